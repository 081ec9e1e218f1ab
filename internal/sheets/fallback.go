package sheets

// fallbackCSV is the terminal tier: a hardcoded document guaranteeing
// the proxy always has something to serve. The records mirror the
// board's representative listings across transaction types.
const fallbackCSV = Header + "\n" +
	`,유니시티 4단지,405동 고층,아파트,"8억 5,000",35평,,,,"남향, 공원뷰, 풀옵션",,TRUE
,유니시티 3단지,301동 중층,아파트,"10억 2,000",41평,,,,"코너, 조망 우수, 올수리",,TRUE
,유니시티 1단지,110동 로얄층,아파트,"7억 8,000",30평,,,,"역세권, 채광 좋음",,TRUE
,유니시티 어반브릭스,1층 코너,상가,"5,000/250",15평,,,,유동인구 많음,,TRUE
,힐스테이트 에비뉴,A동 15층,오피스텔,"3억 2,000",25평,,,,"풀퍼니시드, 업무 최적",,TRUE
`

// FallbackCSV exposes the hardcoded document for the resolver's own
// terminal tier and for tests.
func FallbackCSV() string {
	return fallbackCSV
}

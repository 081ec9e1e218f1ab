package listings

import "github.com/yeoyeo/realty-api/internal/models"

// DefaultListings is the terminal tier: representative records spanning
// the board's transaction types, served when every remote and backup
// source has failed.
func DefaultListings() []models.Listing {
	return []models.Listing{
		{Type: "아파트", Complex: "유니시티 4단지", Size: "35평", Unit: "405동 고층", Price: "8억 5,000", Features: "남향, 공원뷰, 풀옵션", Category: "unicity"},
		{Type: "아파트", Complex: "유니시티 3단지", Size: "41평", Unit: "301동 중층", Price: "10억 2,000", Features: "코너, 조망 우수, 올수리", Category: "unicity"},
		{Type: "아파트", Complex: "유니시티 1단지", Size: "30평", Unit: "110동 로얄층", Price: "7억 8,000", Features: "역세권, 채광 좋음", Category: "unicity"},
		{Type: "상가", Complex: "유니시티 어반브릭스", Size: "15평", Unit: "1층 코너", Price: "5,000/250", Features: "유동인구 많음", Category: "all"},
		{Type: "오피스텔", Complex: "힐스테이트 에비뉴", Size: "25평", Unit: "A동 15층", Price: "3억 2,000", Features: "풀퍼니시드, 업무 최적", Category: "all"},
	}
}

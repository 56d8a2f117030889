package content

import (
	"fmt"

	"github.com/phrazzld/trendpulse/internal/domain"
)

// PlaceholderImage is returned whenever a thumbnail cannot be generated.
// Both degraded modes use the same image.
const PlaceholderImage = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='400' height='600' " +
	"viewBox='0 0 400 600'%3E%3Crect width='100%25' height='100%25' fill='%231e293b'/%3E%3Ctext x='50%25' " +
	"y='50%25' dominant-baseline='middle' text-anchor='middle' font-family='sans-serif' font-size='24' " +
	"fill='%2394a3b8'%3EImage Generation%3C/text%3E%3Ctext x='50%25' y='55%25' dominant-baseline='middle' " +
	"text-anchor='middle' font-family='sans-serif' font-size='16' fill='%2364748b'%3E(Mock Mode)%3C/text%3E%3C/svg%3E"

// Title markers of degraded plans
const (
	DemoMarker     = "(Demo)"
	FallbackMarker = "(Fallback)"
)

var mockTrends = []domain.TrendItem{
	{Keyword: "탕후루 오마카세", Category: "Food", Volume: "50k+", Growth: 120},
	{Keyword: "여름 뮤직 페스티벌", Category: "Events", Volume: "100k+", Growth: 85},
	{Keyword: "AI 프로필 만들기", Category: "Tech", Volume: "20k+", Growth: 200},
	{Keyword: "장마철 코디", Category: "Fashion", Volume: "30k+", Growth: 150},
	{Keyword: "신상 편의점 간식", Category: "Food", Volume: "10k+", Growth: 90},
}

var mockPlan = domain.ContentPlan{
	Title: "집에서 즐기는 탕후루 오마카세 🍓",
	Hook:  "아직도 줄 서서 드시나요? 10분 만에 집에서 만드는 탕후루 비법!",
	Body:  "설탕 코팅이 얇고 바삭한 탕후루, 실패 없이 만드는 꿀팁을 알려드립니다. 과일 손질부터 시럽 비율까지 완벽 정리!",
	Platforms: []string{"Instagram Reels", "YouTube Shorts", "TikTok"},
	Hashtags:  []string{"#탕후루", "#홈카페", "#디저트만들기", "#간식", "#트렌드"},
	VisualPrompt: "Close up shot of colorful candied fruit tanghulu skewers, glistening sugar coating, " +
		"bright cinematic lighting, 4k resolution",
	Sources: []domain.GroundingSource{
		{Title: "Tanghulu Recipe - Wikipedia", URI: "https://en.wikipedia.org/wiki/Tanghulu"},
		{Title: "Viral Food Trends 2024", URI: "https://example.com/trends"},
	},
	Places: []domain.MapPlace{
		{Title: "Wangga Tanghulu", URI: "https://maps.google.com", Address: "Hongdae, Seoul"},
		{Title: "Street Food Zone", URI: "https://maps.google.com", Address: "Myeongdong, Seoul"},
	},
}

// MockTrends returns a fresh copy of the fallback trend list.
func MockTrends() []domain.TrendItem {
	return domain.CloneTrends(mockTrends)
}

// MockPlan returns a fresh copy of the fallback plan with its base title.
func MockPlan() domain.ContentPlan {
	return mockPlan.Clone()
}

// degradedPlan returns the fallback plan titled for keyword and marked with
// the degraded mode. An empty keyword keeps the base title.
func degradedPlan(keyword string, mode domain.Mode) domain.ContentPlan {
	plan := MockPlan()

	marker := FallbackMarker
	if mode == domain.ModeDemo {
		marker = DemoMarker
	}

	if keyword == "" {
		plan.Title = fmt.Sprintf("%s %s", plan.Title, marker)
	} else {
		plan.Title = fmt.Sprintf("%s 콘텐츠 기획안 %s", keyword, marker)
	}
	return plan
}

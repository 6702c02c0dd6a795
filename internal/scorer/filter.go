package scorer

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/deusflow/trendbrief/internal/news"
	"github.com/deusflow/trendbrief/internal/normalize"
)

// MinSummaryLen is the shortest summary, in runes, that counts as real content.
const MinSummaryLen = 50

// Rejection reasons returned by Filter.Check.
const (
	ReasonVideoSource    = "video_source"
	ReasonDomesticSource = "domestic_source"
	ReasonTooShort       = "too_short"
	ReasonPaywall        = "paywall"
)

var paywallKeywords = []string{
	"구독자 전용", "유료", "premium", "subscribe", "paywall",
	"로그인 후", "전문보기", "유료기사", "구독 후", "멤버십",
	"subscribers only", "paid content",
}

// Video, podcast and social platforms are not text news.
var excludedURLPatterns = []string{
	"youtube.com", "youtu.be",
	"vimeo.com", "dailymotion.com",
	"tiktok.com", "instagram.com",
	"facebook.com/watch", "twitter.com/i/spaces",
	"podcasts.apple.com", "spotify.com/episode",
}

var excludedSourceKeywords = []string{
	"youtube", "유튜브", "podcast", "팟캐스트",
	"tiktok", "틱톡", "instagram", "인스타그램",
}

var domesticURLPatterns = []string{
	".kr/", ".kr?", ".co.kr",
	"chosun.com", "chosunbiz", "donga.com", "joongang.co", "hankyung.com", "hani.co",
	"yna.co", "yonhapnews", "mk.co", "edaily.co", "etnews.com",
	"zdnet.co.kr", "newsis.com", "newspim.com", "news1.kr",
	"sedaily.com", "fnnews.com", "mt.co.kr", "thebell.co",
	"pharmnews.com", "yakup.com", "bosa.co", "doctorstimes.com",
	"medigatenews.com", "hkn24.com", "whosaeng.com",
	"medipana.com", "dailypharm.com", "health.chosun",
	"digitaltoday.co", "asiae.co", "ajunews.com", "inews24.com",
	"dt.co.kr", "bloter.net", "ddaily.co", "bizwatch.co",
	"olyx.co", "gangnamunni",
}

var domesticSourceKeywords = []string{
	"조선", "chosunbiz", "동아", "중앙", "한겨레", "경향", "매일경제", "한국경제",
	"연합뉴스", "뉴시스", "뉴스1", "이데일리", "파이낸셜", "머니투데이",
	"서울경제", "아시아경제", "헤럴드", "the bell", "더벨",
	"약업신문", "팜뉴스", "메디게이트", "보사", "의사신문", "메디파나",
	"데일리팜", "헬스조선", "코리아", "korea times", "korea herald",
	"디지털투데이", "digitaltoday", "강남언니", "gangnam unni",
	"breaknews", "브레이크뉴스", "newdaily", "뉴데일리", "medicaltimes",
	"newsway", "뉴스웨이", "kukinews", "국민일보", "segye", "세계일보",
	"hankyoreh", "biz.heraldcorp", "biomedipharma",
}

// Filter decides whether an article may be scored at all.
// With GlobalOnly set, Korean domestic outlets are rejected too.
type Filter struct {
	GlobalOnly bool
}

func (f Filter) IsAdmissible(a news.Article) bool {
	ok, _ := f.Check(a)
	return ok
}

// Check returns false and the first failing reason for inadmissible articles.
func (f Filter) Check(a news.Article) (bool, string) {
	if isVideoSource(a) {
		return false, ReasonVideoSource
	}
	if f.GlobalOnly && isDomesticSource(a) {
		return false, ReasonDomesticSource
	}

	summary := strings.TrimSpace(a.Summary)
	if utf8.RuneCountInString(summary) < MinSummaryLen {
		return false, ReasonTooShort
	}

	text := strings.ToLower(strings.TrimSpace(a.Title) + " " + summary)
	if containsAnyLower(text, paywallKeywords) {
		return false, ReasonPaywall
	}

	return true, ""
}

func isVideoSource(a news.Article) bool {
	return containsAnyLower(strings.ToLower(a.URL), excludedURLPatterns) ||
		containsAnyLower(strings.ToLower(a.Source), excludedSourceKeywords)
}

func isDomesticSource(a news.Article) bool {
	link := strings.ToLower(a.URL)
	candidates := []string{link}
	if target := normalize.RedirectTarget(link); target != "" {
		candidates = append(candidates, target)
		if unescaped, err := url.QueryUnescape(target); err == nil && unescaped != target {
			candidates = append(candidates, unescaped)
		}
	}
	for _, c := range candidates {
		if containsAnyLower(c, domesticURLPatterns) {
			return true
		}
	}

	if containsAnyLower(strings.ToLower(a.Source), domesticSourceKeywords) {
		return true
	}

	if hangul, total := normalize.HangulStats(a.Title); total > 3 && ratio(hangul, total) >= 0.3 {
		return true
	}

	prefix := normalize.Truncate(a.Summary, 200)
	if hangul, total := normalize.HangulStats(prefix); total > 10 && ratio(hangul, total) >= 0.5 {
		return true
	}

	return false
}

func ratio(part, total int) float64 {
	return float64(part) / float64(total)
}

// containsAnyLower expects text already lower-cased.
func containsAnyLower(text string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(text, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

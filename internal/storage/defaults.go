package storage

import "github.com/deusflow/trendbrief/internal/criteria"

const alertsBase = "https://www.google.co.kr/alerts/feeds/18326457998461538766/"

// Google Alerts feeds each built-in folder starts with.
var defaultFeeds = map[string][]Feed{
	"의료서비스": {
		{Name: "Attracting foreign patients", URL: alertsBase + "13561308332292748472"},
		{Name: "Corporate Hospital", URL: alertsBase + "16693441824814805775"},
		{Name: "Health cooperation", URL: alertsBase + "1287887581071480978"},
		{Name: "telemedicine", URL: alertsBase + "9055610516680741382"},
		{Name: "Telemedicine regulations", URL: alertsBase + "2928527134966813170"},
		{Name: "foreign patients", URL: alertsBase + "10457698523200751004"},
		{Name: "medical tourism", URL: alertsBase + "7826728468277936331"},
		{Name: "foreign doctors", URL: alertsBase + "7826728468277936981"},
		{Name: "Foreign medical license", URL: alertsBase + "7826728468277937655"},
		{Name: "Establishing hospitals overseas", URL: alertsBase + "3594479743701557419"},
		{Name: "Medical MOU", URL: alertsBase + "2313437686882011229"},
	},
	"디지털헬스": {
		{Name: "AI Medical", URL: alertsBase + "13014376445345209407"},
		{Name: "AI Medical Research", URL: alertsBase + "8744798816557255021"},
		{Name: "Digital health", URL: alertsBase + "11820206743454096975"},
		{Name: "digital therapeutics", URL: alertsBase + "17406051997125751123"},
		{Name: "AI medical devices", URL: alertsBase + "10373506605108435851"},
		{Name: "virtual therapy", URL: alertsBase + "2072337529383132064"},
		{Name: "Wearable Health", URL: alertsBase + "4698420078235331068"},
	},
	"의료기기": {
		{Name: "robotic medical devices", URL: alertsBase + "13227641381889425281"},
		{Name: "medical devices", URL: alertsBase + "6206917423973395550"},
		{Name: "robotic medical surgery", URL: alertsBase + "7141639275305383942"},
		{Name: "Medical device approval", URL: alertsBase + "7141639275305384670"},
		{Name: "Medical device FDA approval", URL: alertsBase + "7141639275305382961"},
		{Name: "Medical Device Regulation", URL: alertsBase + "17869874465675685153"},
	},
	"제약": {
		{Name: "FDA approval of medicines", URL: alertsBase + "6671054869581734818"},
		{Name: "European approval of medicines", URL: alertsBase + "13227641381889422015"},
		{Name: "pharma approval", URL: alertsBase + "10296632812682810747"},
		{Name: "New drug development", URL: alertsBase + "13810736302959211643"},
		{Name: "Big Pharma", URL: alertsBase + "17738920745123822763"},
		{Name: "New Pharma research", URL: alertsBase + "8670413138782703068"},
		{Name: "Pharmaceutical regulations", URL: alertsBase + "17869874465675685712"},
	},
	"화장품": {
		{Name: "cosmetic trends", URL: alertsBase + "7394127831386510300"},
		{Name: "cosmetic industry", URL: alertsBase + "4617254871446954389"},
		{Name: "Cosmetic ingredients", URL: alertsBase + "15903492943861068235"},
		{Name: "Cosmetics trends", URL: alertsBase + "15903492943861070072"},
		{Name: "Cosmetics Regulations", URL: alertsBase + "15903492943861071128"},
	},
}

// Defaults builds the settings a fresh install starts from: every built-in
// category with its criteria and feeds.
func Defaults() Settings {
	folders := make(map[string]*Folder)

	for _, name := range criteria.BuiltinNames() {
		c, _ := criteria.Builtin(name)
		folders[name] = &Folder{Criteria: c, Feeds: []Feed{}, SearchQueries: []string{}}
	}
	for name, feeds := range defaultFeeds {
		f, ok := folders[name]
		if !ok {
			f = &Folder{Criteria: criteria.Default(), SearchQueries: []string{}}
			folders[name] = f
		}
		f.Feeds = append([]Feed{}, feeds...)
	}

	return Settings{Folders: folders}
}

package criteria

type builtinEntry struct {
	name     string
	criteria Criteria
}

var builtins = []builtinEntry{
	{
		name: "의료서비스",
		criteria: Criteria{
			TopN: 40,
			Description: "FOCUS: International biohealth cooperation & healthcare globalization trends.\n" +
				"HIGH relevance (8-10): Country-to-country public health cooperation agreements, " +
				"strategies to attract foreign hospitals or establish hospitals overseas, " +
				"medical license reciprocity/recognition issues across borders, " +
				"telemedicine technology and cross-border remote care platforms, " +
				"international patient attraction policies, medical tourism industry trends.\n" +
				"MEDIUM relevance (5-7): General hospital management news with international angle, " +
				"healthcare workforce migration.\n" +
				"LOW relevance (1-4): Domestic-only hospital news, local clinic operations, " +
				"general health tips, unrelated policy news, entertainment, real estate.",
			Keywords: []string{
				"외국인환자", "외국인 환자", "외국인환자유치",
				"의료인 면허", "의료인면허", "의료인 진출", "의료인진출",
				"비대면", "원격진료", "원격 진료",
				"보건의료협력", "보건의료 협력", "보건 의료 협력",
				"병원 해외진출", "병원해외진출", "병원 설립", "해외 병원",
				"의료관광", "의료 관광", "메디컬 투어",
			},
			KeywordsEN: []string{
				"medical tourism", "international patient",
				"telemedicine", "telehealth", "remote healthcare",
				"hospital overseas", "healthcare cooperation",
				"foreign patient", "medical travel",
				"cross-border healthcare", "global health",
			},
			NegativeKeywords: []string{
				"산업로봇", "industrial robot", "제조로봇",
				"부동산", "real estate", "stock market", "주식",
				"entertainment", "연예",
			},
			ExcludeKeywords: []string{},
			CountryBoost: map[string]int{
				"미국": 2, "USA": 2, "US": 2,
				"유럽": 2, "EU": 2, "영국": 2, "독일": 2, "프랑스": 2,
				"중동": 3, "사우디": 3, "사우디아라비아": 3, "Saudi": 3,
				"UAE": 3, "아랍에미리트": 3, "두바이": 3, "Dubai": 3,
				"카타르": 3, "Qatar": 3, "오만": 3, "쿠웨이트": 3, "바레인": 3,
				"아시아": 1, "일본": 1, "중국": 1, "베트남": 1,
				"태국": 1, "인도": 1, "인도네시아": 1, "싱가포르": 1,
			},
		},
	},
	{
		name: "디지털헬스",
		criteria: Criteria{
			TopN: 40,
			Description: "FOCUS: AI and digital technology applied to healthcare/medicine.\n" +
				"HIGH relevance (8-10): AI-powered medical diagnosis or treatment tools, " +
				"AI drug discovery, machine learning in clinical settings, " +
				"digital therapeutics (DTx) development/approval, " +
				"AI medical imaging analysis, LLM/foundation models for healthcare, " +
				"FDA/regulatory decisions on AI medical software (SaMD).\n" +
				"MEDIUM relevance (5-7): General digital health platforms, wearable health devices, " +
				"remote patient monitoring technology, health data interoperability.\n" +
				"LOW relevance (1-4): General AI news NOT related to healthcare (chatbots, autonomous driving, fintech AI), " +
				"basic fitness apps, consumer electronics, gaming, EdTech, " +
				"AI in non-medical industries.",
			Keywords: []string{
				"AI 의료기기", "AI의료기기", "AI 의료 기기", "인공지능 의료기기",
				"AI 의료서비스", "AI의료서비스", "AI 의료 서비스", "인공지능 의료",
				"디지털치료기기", "디지털 치료기기", "디지털치료제", "DTx",
				"디지털헬스", "디지털 헬스", "디지털건강", "digital health",
				"연구동향", "기술동향", "기술 동향",
				"SaMD", "웨어러블", "헬스케어 AI", "헬스케어AI",
				"원격모니터링", "원격 모니터링",
			},
			KeywordsEN: []string{
				"digital health", "digital therapeutics", "DTx",
				"AI medical device", "AI healthcare", "AI diagnosis",
				"SaMD", "software as medical device",
				"wearable health", "remote monitoring",
				"health tech", "healthtech", "medtech AI",
				"clinical decision support",
			},
			NegativeKeywords: []string{
				"자율주행", "autonomous driving", "self-driving",
				"fintech", "핀테크", "edtech", "에드테크",
				"gaming", "게임",
			},
			ExcludeKeywords: []string{},
			CountryBoost:    map[string]int{},
		},
	},
	{
		name: "의료기기",
		criteria: Criteria{
			TopN: 25,
			Description: "FOCUS: Medical device industry trends: new technology, regulatory approvals, major corporate moves.\n" +
				"HIGH relevance (8-10): FDA/CE/MFDS new device approvals or clearances (510k, PMA, de novo), " +
				"breakthrough medical device technologies (surgical robots, AI diagnostics, implants), " +
				"major M&A or partnerships among large medtech companies (Medtronic, J&J, Siemens Healthineers, etc.), " +
				"significant regulatory changes (MDR, IVDR) affecting device industry.\n" +
				"MEDIUM relevance (5-7): IVD/diagnostics updates, medical device recalls, " +
				"clinical trial results for devices, industry conferences.\n" +
				"LOW relevance (1-4): Industrial robots/manufacturing robots NOT for medical use, " +
				"food safety (FDA food division), agriculture equipment, " +
				"small local company routine news, general business news.",
			Keywords: []string{
				"의료기기 승인", "의료기기승인", "FDA 승인", "FDA승인",
				"CE 인증", "CE인증", "EU 승인",
				"로봇", "수술로봇", "수술 로봇", "로봇 의료", "의료로봇",
				"첨단의료기기", "첨단 의료기기",
				"산업동향", "산업 동향",
				"연구동향", "연구 동향",
				"의료기기 규제", "의료기기규제", "MFDS", "MDR",
				"체외진단", "IVD",
			},
			KeywordsEN: []string{
				"medical device", "FDA approval", "FDA clearance",
				"CE marking", "CE mark", "MDR compliance",
				"surgical robot", "robotic surgery",
				"in vitro diagnostics", "IVD",
				"medical device regulation",
				"510(k)", "PMA approval", "de novo",
			},
			NegativeKeywords: []string{
				"산업로봇", "industrial robot", "제조로봇", "manufacturing robot",
				"식품", "food safety", "식품안전",
				"농업", "agriculture",
			},
			ExcludeKeywords: []string{},
			CountryBoost:    map[string]int{},
		},
	},
	{
		name: "제약",
		criteria: Criteria{
			TopN: 25,
			Description: "FOCUS: Pharmaceutical industry trends: drug approvals, major pharma moves, clinical breakthroughs.\n" +
				"HIGH relevance (8-10): FDA/EMA new drug approvals (NDA, BLA), " +
				"landmark clinical trial results (especially Phase 3), " +
				"major pharma M&A or licensing deals (Pfizer, Roche, Novartis, Samsung Biologics, etc.), " +
				"breakthrough therapy designations, new drug pricing policies with industry impact, " +
				"biosimilar/generic market shifts.\n" +
				"MEDIUM relevance (5-7): Drug supply chain issues, API (active pharmaceutical ingredient) trends, " +
				"early-phase clinical trials, pharma earnings with strategic implications.\n" +
				"LOW relevance (1-4): Food industry news, cosmetics, agricultural chemicals, " +
				"general stock market commentary, unrelated regulatory news, " +
				"small supplement companies, traditional medicine without clinical evidence.",
			Keywords: []string{
				"의약품 승인", "의약품승인", "FDA 승인", "FDA승인",
				"EMA 승인", "EU 승인",
				"임상시험", "임상 시험", "clinical trial", "임상3상", "임상 3상",
				"공급망", "공급 망", "supply chain", "원료의약품",
				"연구동향", "연구 동향",
				"산업동향", "산업 동향",
				"의약품 규제", "의약품규제", "약가", "신약",
				"바이오시밀러", "바이오 시밀러", "제네릭",
			},
			KeywordsEN: []string{
				"drug approval", "FDA approved", "EMA approval",
				"clinical trial", "phase 3", "phase III",
				"pharmaceutical", "pharma pipeline",
				"biosimilar", "generic drug",
				"drug pricing", "drug supply chain",
				"new drug application", "NDA", "BLA",
			},
			NegativeKeywords: []string{
				"식품", "food", "cosmetic", "화장품",
				"농약", "pesticide",
			},
			ExcludeKeywords: []string{},
			CountryBoost:    map[string]int{},
		},
	},
	{
		name: "화장품",
		criteria: Criteria{
			TopN: 20,
			Description: "FOCUS: Cosmetics & beauty industry trends: new ingredients, R&D, beauty tech innovation.\n" +
				"HIGH relevance (8-10): New cosmetic ingredient discoveries or safety research, " +
				"beauty tech innovations (AI skin analysis, personalized formulation, biotech-derived ingredients), " +
				"major cosmetic regulatory changes (EU, FDA, China), " +
				"K-beauty global market trends and export data, " +
				"large beauty company R&D announcements (L'Oreal, Amorepacific, LG H&H, etc.).\n" +
				"MEDIUM relevance (5-7): Clean beauty/vegan/sustainable beauty trends, " +
				"beauty market reports, ingredient supply chain, cosmetic packaging innovation.\n" +
				"LOW relevance (1-4): Plastic surgery/cosmetic surgery (medical procedures, not products), " +
				"fashion/clothing, celebrity beauty routines without industry substance, " +
				"general retail/e-commerce news, food industry.",
			Keywords: []string{
				"뷰티테크", "뷰티 테크", "beauty tech",
				"기술동향", "기술 동향",
				"기업동향", "기업 동향", "대기업",
				"화장품 성분", "화장품성분", "성분 규제",
				"연구동향", "연구 동향",
				"K-뷰티", "K뷰티", "K-beauty",
				"클린뷰티", "클린 뷰티", "비건", "지속가능",
			},
			KeywordsEN: []string{
				"K-beauty", "Korean beauty", "Korean cosmetics",
				"beauty tech", "beauty technology",
				"cosmetic ingredient", "cosmetic regulation",
				"clean beauty", "vegan beauty", "sustainable beauty",
				"skincare innovation", "beauty trend",
			},
			NegativeKeywords: []string{
				"성형", "plastic surgery", "cosmetic surgery",
				"패션", "fashion week",
			},
			ExcludeKeywords: []string{},
			CountryBoost:    map[string]int{},
		},
	},
}

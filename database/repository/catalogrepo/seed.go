package catalogrepo

import "cleanmaster/models"

// defaultCatalog is written to the services collection on first run. Prices
// are in EGP; per-meter entries are priced per square meter.
var defaultCatalog = []models.Service{
	{
		ID:          "mosque_carpets",
		Name:        "غسيل سجاد المساجد 🕌",
		Price:       7,
		Type:        models.PricingPerMeter,
		Category:    "carpets_curtains",
		Description: "خدمة غسيل وتنظيف سجاد المساجد بتقنيات متطورة وآمنة مع التعقيم والتعطير برائحة المسك.",
		Icon:        "fas fa-mosque",
		Includes:    []string{"غسيل عميق بالبخار", "تعقيم بمواد معتمدة", "إزالة بقع الشحوم", "تجفيف وتكييف"},
		VideoURL:    "https://www.youtube.com/embed/P2-IZj-s3PI",
	},
	{
		ID:          "home_cleaning_deep",
		Name:        "تنظيف المنازل العميق 🏠",
		Price:       14,
		Type:        models.PricingPerMeter,
		Category:    "home_cleaning",
		Description: "تنظيف شامل يشمل الحوائط، الأرضيات، المطابخ، والدهون المتراكمة ليعود منزلك جديداً.",
		Icon:        "fas fa-home",
		Includes:    []string{"جلي وتلميع الأرضيات", "إزالة دهون المطبخ", "تعقيم الحمامات", "تلميع النجف والتحف"},
		VideoURL:    "https://www.youtube.com/embed/c6zt_s5gU0I",
	},
	{
		ID:          "home_cleaning_regular",
		Name:        "تنظيف المنازل العادي 🧹",
		Price:       10,
		Type:        models.PricingPerMeter,
		Category:    "home_cleaning",
		Description: "نظافة دورية تشمل مسح الأتربة، ترتيب الغرف، وتنظيف الأرضيات.",
		Icon:        "fas fa-broom",
		Includes:    []string{"مسح الأتربة", "نظافة الحمامات", "ترتيب الأسرة", "تعطير المنزل"},
		VideoURL:    "https://www.youtube.com/embed/jJzF-BTv-0o",
	},
	{
		ID:          "sofa_cleaning",
		Name:        "تنظيف الانتريهات بالبخار 🛋️",
		Price:       350,
		Type:        models.PricingFixed,
		Category:    "furniture",
		Description: "غسيل الكنب والانتريهات بالبخار مع إزالة البقع والتعقيم الكامل.",
		Icon:        "fas fa-couch",
		Includes:    []string{"غسيل بالبخار", "إزالة البقع", "تعقيم وتعطير"},
	},
	{
		ID:          "curtains_cleaning",
		Name:        "غسيل الستائر 🪟",
		Price:       120,
		Type:        models.PricingFixed,
		Category:    "carpets_curtains",
		Description: "غسيل الستائر في مكانها دون فك أو تركيب.",
		Icon:        "fas fa-border-all",
		Includes:    []string{"غسيل بالبخار في المكان", "تعطير"},
	},
	{
		ID:          "marble_polishing",
		Name:        "جلي وتلميع الرخام ✨",
		Price:       30,
		Type:        models.PricingPerMeter,
		Category:    "finishing",
		Description: "جلي الرخام والبلاط بأحدث ماكينات الجلي الإيطالية وإعادة اللمعة الأصلية.",
		Icon:        "fas fa-gem",
		Includes:    []string{"جلي بالماكينات", "تلميع نهائي", "معالجة الخدوش"},
	},
	{
		ID:          "post_construction",
		Name:        "نظافة ما بعد التشطيب 🧱",
		Price:       0,
		Type:        models.PricingConsultation,
		Category:    "finishing",
		Description: "تقييم شامل للموقع بعد أعمال التشطيب وتحديد التكلفة حسب الحالة بعد المعاينة.",
		Icon:        "fas fa-hard-hat",
		Includes:    []string{"معاينة مجانية", "فريق متكامل", "معدات ألمانية"},
	},
}

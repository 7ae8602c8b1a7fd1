package engine

import "teamsort/internal/model"

// DefaultQuestions returns the built-in interview pool. Each statement
// carries sparse per-team weights plus a primary team used by the
// selection heuristics.
func DefaultQuestions() []model.Question {
	return []model.Question{
		// Proje-Yarışma
		{
			Text:    "Veri analizi ve makine öğrenmesi projelerinde çalışmak ilgimi çeker.",
			Weights: map[model.Category]float64{model.CategoryProject: 1.6, model.CategoryEducation: 0.4},
			Primary: model.CategoryProject,
			Tags:    []string{"veri_bilimi", "makine_öğrenmesi"},
		},
		{
			Text:    "Yapay zeka ve derin öğrenme konularına merak duyarım.",
			Weights: map[model.Category]float64{model.CategoryProject: 1.5, model.CategoryEducation: 0.5},
			Primary: model.CategoryProject,
			Tags:    []string{"yapay_zeka", "derin_öğrenme"},
		},
		{
			Text:    "Veri setleriyle çalışmak ve anlamlı sonuçlar çıkarmak hoşuma gider.",
			Weights: map[model.Category]float64{model.CategoryProject: 1.4, model.CategoryEducation: 0.6},
			Primary: model.CategoryProject,
			Tags:    []string{"veri_analizi", "istatistik"},
		},
		{
			Text:    "Algoritma geliştirme ve model eğitimi konularında kendimi geliştirmek isterim.",
			Weights: map[model.Category]float64{model.CategoryProject: 1.7, model.CategoryEducation: 0.3},
			Primary: model.CategoryProject,
			Tags:    []string{"algoritma", "model_eğitimi"},
		},
		{
			Text:    "Kaggle yarışmaları ve veri bilimi projeleri ilgimi çeker.",
			Weights: map[model.Category]float64{model.CategoryProject: 1.8, model.CategoryNetwork: 0.2},
			Primary: model.CategoryProject,
			Tags:    []string{"kaggle", "yarışma"},
		},

		// Eğitim
		{
			Text:    "Bilgimi başkalarıyla paylaşmak ve öğretmek hoşuma gider.",
			Weights: map[model.Category]float64{model.CategoryEducation: 1.7, model.CategoryNetwork: 0.3},
			Primary: model.CategoryEducation,
			Tags:    []string{"öğretme", "paylaşım"},
		},
		{
			Text:    "Workshop ve eğitim etkinlikleri düzenlemek isterim.",
			Weights: map[model.Category]float64{model.CategoryEducation: 1.6, model.CategoryOrganization: 0.4},
			Primary: model.CategoryEducation,
			Tags:    []string{"workshop", "etkinlik"},
		},
		{
			Text:    "Sunum yapmak ve topluluk önünde konuşmak beni heyecanlandırır.",
			Weights: map[model.Category]float64{model.CategoryEducation: 1.4, model.CategoryMedia: 0.3, model.CategoryNetwork: 0.3},
			Primary: model.CategoryEducation,
			Tags:    []string{"sunum", "konuşma"},
		},
		{
			Text:    "Eğitim materyalleri hazırlamak ve kurs içerikleri geliştirmek ilgimi çeker.",
			Weights: map[model.Category]float64{model.CategoryEducation: 1.5, model.CategoryProject: 0.5},
			Primary: model.CategoryEducation,
			Tags:    []string{"materyal", "içerik"},
		},

		// Organizasyon
		{
			Text:    "Etkinlik planlaması ve organizasyon işleri beni motive eder.",
			Weights: map[model.Category]float64{model.CategoryOrganization: 1.8, model.CategoryNetwork: 0.2},
			Primary: model.CategoryOrganization,
			Tags:    []string{"planlama", "organizasyon"},
		},
		{
			Text:    "Detay odaklı çalışmak ve süreçleri yönetmek hoşuma gider.",
			Weights: map[model.Category]float64{model.CategoryOrganization: 1.5, model.CategoryProject: 0.5},
			Primary: model.CategoryOrganization,
			Tags:    []string{"detay", "süreç"},
		},
		{
			Text:    "Stresli durumları yönetmek ve soğukkanlı kalmak güçlü yanlarımdan.",
			Weights: map[model.Category]float64{model.CategoryOrganization: 1.4, model.CategoryProject: 0.6},
			Primary: model.CategoryOrganization,
			Tags:    []string{"stres", "soğukkanlılık"},
		},
		{
			Text:    "Liderlik yapmak ve takımları koordine etmek isterim.",
			Weights: map[model.Category]float64{model.CategoryOrganization: 1.3, model.CategoryNetwork: 0.7},
			Primary: model.CategoryOrganization,
			Tags:    []string{"liderlik", "koordinasyon"},
		},

		// Network
		{
			Text:    "Yeni insanlarla tanışmak ve ağ kurmak beni mutlu eder.",
			Weights: map[model.Category]float64{model.CategoryNetwork: 1.6, model.CategoryMedia: 0.4},
			Primary: model.CategoryNetwork,
			Tags:    []string{"tanışma", "ağ"},
		},
		{
			Text:    "İş birliği ve ortaklık fırsatları aramak ilgimi çeker.",
			Weights: map[model.Category]float64{model.CategoryNetwork: 1.7, model.CategoryOrganization: 0.3},
			Primary: model.CategoryNetwork,
			Tags:    []string{"işbirliği", "ortaklık"},
		},
		{
			Text:    "Topluluk etkinliklerinde aktif rol almak isterim.",
			Weights: map[model.Category]float64{model.CategoryNetwork: 1.4, model.CategoryEducation: 0.6},
			Primary: model.CategoryNetwork,
			Tags:    []string{"topluluk", "aktif_rol"},
		},
		{
			Text:    "Dış ilişkiler ve sponsorluk konularında çalışmak hoşuma gider.",
			Weights: map[model.Category]float64{model.CategoryNetwork: 1.5, model.CategoryOrganization: 0.5},
			Primary: model.CategoryNetwork,
			Tags:    []string{"dış_ilişkiler", "sponsorluk"},
		},

		// Medya
		{
			Text:    "Görsel tasarım ve video içerik üretimi ilgi alanım.",
			Weights: map[model.Category]float64{model.CategoryMedia: 1.8, model.CategoryNetwork: 0.3},
			Primary: model.CategoryMedia,
			Tags:    []string{"tasarım", "video"},
		},
		{
			Text:    "Sosyal medya platformlarında içerik üretmek ve paylaşmak severim.",
			Weights: map[model.Category]float64{model.CategoryMedia: 1.6, model.CategoryNetwork: 0.4},
			Primary: model.CategoryMedia,
			Tags:    []string{"sosyal_medya", "içerik"},
		},
		{
			Text:    "Fotoğrafçılık ve görsel hikaye anlatımı ilgimi çeker.",
			Weights: map[model.Category]float64{model.CategoryMedia: 1.5, model.CategoryEducation: 0.5},
			Primary: model.CategoryMedia,
			Tags:    []string{"fotoğraf", "hikaye"},
		},
		{
			Text:    "Kreatif yazarlık ve metin içerikleri hazırlamak hoşuma gider.",
			Weights: map[model.Category]float64{model.CategoryMedia: 1.4, model.CategoryEducation: 0.6},
			Primary: model.CategoryMedia,
			Tags:    []string{"yazarlık", "metin"},
		},
		{
			Text:    "Kamera karşısında rahatım ve röportaj yapabilirim.",
			Weights: map[model.Category]float64{model.CategoryMedia: 1.3, model.CategoryNetwork: 0.7},
			Primary: model.CategoryMedia,
			Tags:    []string{"kamera", "röportaj"},
		},
	}
}

package catalog

import "github.com/enesk/study-planner/internal/model"

// seedMonths is the initial topic catalog, installed on first run when
// no monthly plans have been persisted yet. Users edit their own copy
// afterwards; this slice is never consulted again once the snapshot
// exists.
func seedMonths() []model.Month {
	return []model.Month{
		{
			ID:    "august-2025",
			Name:  "Ağustos 2025",
			Year:  2025,
			Month: 8,
			Subjects: map[string][]string{
				"Matematik": {
					"Temel Kavramlar",
					"Sayı Basamakları",
					"Bölme ve Bölünebilme",
					"EBOB – EKOK",
				},
				"Fizik": {
					"Fizik Bilimine Giriş",
					"Madde ve Özellikleri",
					"Sıvıların Kaldırma Kuvveti",
				},
				"Kimya": {
					"Kimya Bilimi",
					"Atom ve Periyodik Sistem",
				},
				"Biyoloji": {
					"Canlıların Ortak Özellikleri",
					"Canlıların Temel Bileşenleri",
					"Hücre ve Organeller – Madde Geçişleri",
				},
				"Geometri": {
					"Temel Kavramlar",
					"Doğruda Açılar",
				},
			},
			Goals: []string{
				"Günlük rutini oturt. Her konu sonrası 6–8 ÖSYM tarzı soru. İlk hafta tanı deneme (40 soru).",
			},
		},
		{
			ID:    "september-2025",
			Name:  "Eylül 2025",
			Year:  2025,
			Month: 9,
			Subjects: map[string][]string{
				"Matematik": {
					"Rasyonel Sayılar",
					"Basit Eşitsizlikler",
					"Mutlak Değer",
					"Üslü Sayılar",
					"Köklü Sayılar",
					"Çarpanlara Ayırma",
				},
				"Fizik": {
					"Hareket ve Kuvvet",
					"Dinamik",
					"İş, Güç ve Enerji",
				},
				"Kimya": {
					"Kimyasal Türler Arası Etkileşimler",
					"Maddenin Halleri",
				},
				"Biyoloji": {
					"Canlıların Sınıflandırılması",
					"Hücrede Bölünme – Üreme",
					"Kalıtım",
				},
				"Geometri": {
					"Üçgende Açılar",
					"Özel Üçgenler",
				},
			},
			Goals: []string{"Haftalık mini deneme"},
		},
		{
			ID:    "october-2025",
			Name:  "Ekim 2025",
			Year:  2025,
			Month: 10,
			Subjects: map[string][]string{
				"Matematik": {
					"Oran Orantı",
					"Denklem Çözme",
					"Kümeler – Kartezyen Çarpım",
					"Mantık",
				},
				"Fizik": {
					"Basınç",
					"Isı, Sıcaklık ve Genleşme",
					"Dinamik",
				},
				"Kimya": {
					"Kimyanın Temel Kanunları",
					"Kimyasal Hesaplamalar",
					"Karışımlar",
				},
				"Biyoloji": {
					"Bitki Biyolojisi",
					"Ekosistem",
				},
				"Geometri": {
					"Üçgende Alan",
					"Üçgende Benzerlik",
					"Açı Kenar Bağıntıları",
				},
			},
			Goals: []string{
				"Eylül denemelerinin hata analizleri; paragraf+problem rutin tam hız.",
			},
		},
		{
			ID:    "november-2025",
			Name:  "Kasım 2025",
			Year:  2025,
			Month: 11,
			Subjects: map[string][]string{
				"Matematik": {
					"Fonksiyonlar",
					"Polinomlar",
					"2.Dereceden Denklemler",
					"Permütasyon ve Kombinasyon",
				},
				"Fizik": {
					"Elektrik",
					"Manyetizma",
					"Dalgalar",
				},
				"Kimya": {
					"Asit, Baz ve Tuz",
					"Kimya Her Yerde",
				},
				"Biyoloji": {
					"Genden Proteine",
					"Nükleik Asitler",
				},
				"Geometri": {
					"Özel Dörtgenler",
					"Çokgenler",
					"Paralelkenar",
					"Yamuk",
				},
			},
			Goals: []string{
				"Ay sonu: 1 tam TYT bölümlü deneme (zaman yönetimi analizi).",
			},
		},
		{
			ID:    "december-2025",
			Name:  "Aralık 2025",
			Year:  2025,
			Month: 12,
			Subjects: map[string][]string{
				"Matematik": {
					"Olasılık",
					"Veri – İstatistik",
					"Parabol",
					"Trigonometri",
					"Logaritma",
				},
				"Fizik": {
					"Vektörler",
					"Newton'un Hareket Yasaları",
				},
				"Kimya": {
					"Modern Atom Teorisi",
					"Gazlar",
				},
				"Biyoloji": {
					"Sinir Sistemi",
					"Endokrin Sistem ve Hormonlar",
					"Duyu Organları",
				},
				"Geometri": {
					"Analitik Geometri",
					"Noktanın Analitiği",
					"Doğrunun Analitiği",
				},
			},
			Goals: []string{
				"Deneme sıklığını artır (haftada 1 tam TYT + 1 AYT deneme). Haftalık hata analizi zorunlu.",
			},
		},
	}
}

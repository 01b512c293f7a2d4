// Package content serves the bot's static religious texts: ayahs of the
// day, categorized duas, and the Islamic calendar summary.
package content

import (
	"fmt"
	"time"
)

type Ayah struct {
	Text   string
	Source string
}

var ayahs = []Ayah{
	{
		Text:   "O you who believe! Seek help through patience and prayer. Indeed, Allah is with the patient.",
		Source: "Surah Al-Baqarah, 2:153",
	},
	{
		Text:   "Indeed, prayer prohibits immorality and wrongdoing, and the remembrance of Allah is greater.",
		Source: "Surah Al-Ankabut, 29:45",
	},
	{
		Text:   "So remember Me; I will remember you. And be grateful to Me and do not deny Me.",
		Source: "Surah Al-Baqarah, 2:152",
	},
	{
		Text:   "And when My servants ask you concerning Me - indeed I am near.",
		Source: "Surah Al-Baqarah, 2:186",
	},
	{
		Text:   "Verily, with hardship comes ease.",
		Source: "Surah Ash-Sharh, 94:6",
	},
}

// AyahOfTheDay rotates through the collection by calendar day so every
// user sees the same ayah on the same date.
func AyahOfTheDay(day time.Time) Ayah {
	index := day.YearDay() % len(ayahs)
	return ayahs[index]
}

type Dua struct {
	Title         string
	Arabic        string
	Transcription string
	Translation   string
}

type Category struct {
	Key   string
	Title string
	Duas  []Dua
}

var categories = []Category{
	{
		Key:   "morning",
		Title: "Morning",
		Duas: []Dua{
			{
				Title:         "Upon waking",
				Arabic:        "الْحَمْدُ لِلَّهِ الَّذِي أَحْيَانَا بَعْدَ مَا أَمَاتَنَا وَإِلَيْهِ النُّشُورُ",
				Transcription: "Alhamdu lillahil-ladhi ahyana ba'da ma amatana wa ilayhin-nushur",
				Translation:   "Praise is to Allah who gave us life after death, and to Him is the resurrection.",
			},
			{
				Title:         "Morning remembrance",
				Arabic:        "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ",
				Transcription: "Asbahna wa asbahal-mulku lillah",
				Translation:   "We have entered the morning and the dominion belongs to Allah.",
			},
		},
	},
	{
		Key:   "evening",
		Title: "Evening",
		Duas: []Dua{
			{
				Title:         "Before sleep",
				Arabic:        "بِاسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا",
				Transcription: "Bismika Allahumma amutu wa ahya",
				Translation:   "In Your name, O Allah, I die and I live.",
			},
		},
	},
	{
		Key:   "food",
		Title: "Food",
		Duas: []Dua{
			{
				Title:         "Before eating",
				Arabic:        "بِسْمِ اللَّهِ",
				Transcription: "Bismillah",
				Translation:   "In the name of Allah.",
			},
			{
				Title:         "After eating",
				Arabic:        "الْحَمْدُ لِلَّهِ الَّذِي أَطْعَمَنَا وَسَقَانَا وَجَعَلَنَا مُسْلِمِينَ",
				Transcription: "Alhamdu lillahil-ladhi at'amana wa saqana wa ja'alana muslimin",
				Translation:   "Praise is to Allah who has fed us, given us drink, and made us Muslims.",
			},
		},
	},
	{
		Key:   "travel",
		Title: "Travel",
		Duas: []Dua{
			{
				Title:         "Setting out",
				Arabic:        "سُبْحَانَ الَّذِي سَخَّرَ لَنَا هَذَا وَمَا كُنَّا لَهُ مُقْرِنِينَ",
				Transcription: "Subhanal-ladhi sakhkhara lana hadha wa ma kunna lahu muqrinin",
				Translation:   "Glory to Him who has subjected this to us, and we could never have it by our efforts.",
			},
		},
	},
	{
		Key:   "forgiveness",
		Title: "Forgiveness",
		Duas: []Dua{
			{
				Title:         "Seeking forgiveness",
				Arabic:        "رَبِّ اغْفِرْ لِي وَتُبْ عَلَيَّ إِنَّكَ أَنْتَ التَّوَّابُ الرَّحِيمُ",
				Transcription: "Rabbighfir li wa tub 'alayya innaka antat-tawwabur-rahim",
				Translation:   "My Lord, forgive me and accept my repentance. You are the Accepter of repentance, the Merciful.",
			},
		},
	},
}

// Categories returns the dua categories in display order.
func Categories() []Category {
	return categories
}

// CategoryByKey looks up a category by its callback key.
func CategoryByKey(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// FormatDua renders a dua as a message body.
func FormatDua(d Dua) string {
	text := fmt.Sprintf("%s\n\n%s\n", d.Title, d.Arabic)
	if d.Transcription != "" {
		text += "\n" + d.Transcription + "\n"
	}
	text += "\n" + d.Translation
	return text
}

// CalendarSummary lists the notable Islamic dates shown by the
// calendar command.
func CalendarSummary() string {
	return "Important Islamic dates:\n\n" +
		"Ramadan 1446: ~28 February 2025\n" +
		"Eid al-Fitr: ~30 March 2025\n" +
		"Eid al-Adha: ~6 June 2025\n" +
		"Day of Arafah: ~5 June 2025\n" +
		"Isra and Mi'raj: ~27 January 2025"
}

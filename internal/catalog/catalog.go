// Package catalog holds the built-in assessment question catalogs and the
// conditional-insertion rule for the round-5 skill challenge.
package catalog

import "skillbridge/internal/model"

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

// BranchQuestionID is the career-goal question whose answer picks the
// round-5 skill challenge.
const BranchQuestionID = "career_goal"

// Languages lists the catalog languages that ship with the binary.
func Languages() []string {
	return []string{"en", "hi", "kn"}
}

// BaseSequence returns the ordered static question list for a language.
// Unknown languages deterministically fall back to English; the result is
// never empty and every item carries a stable ID.
func BaseSequence(language string) []model.Question {
	qs, ok := catalogs[language]
	if !ok {
		qs = catalogs[DefaultLanguage]
		language = DefaultLanguage
	}

	out := make([]model.Question, len(qs))
	copy(out, qs)
	for i := range out {
		out[i].ID = out[i].ResolveID(i)
		out[i].Language = language
	}
	return out
}

// ConditionalFor maps an answer to the career-goal branch question to the
// round-5 skill challenge spliced after it. Unknown answers return nil: an
// unrecognized branch answer must never fail the flow.
func ConditionalFor(language, branchAnswer string) *model.Question {
	key, ok := branchRules[canonicalGoal(language, branchAnswer)]
	if !ok {
		return nil
	}
	if _, ok := challenges[language]; !ok {
		language = DefaultLanguage
	}
	for _, q := range skillChallenges(language) {
		if q.ID == key {
			spliced := q
			spliced.Language = language
			return &spliced
		}
	}
	return nil
}

var branchRules = map[string]string{
	"teach":    "q5_freelance",
	"earnHome": "q5_creative",
	"shop":     "q5_business",
	"office":   "q5_tech",
}

// canonicalGoal maps a localized career-goal option back to its canonical
// rule key by position in the option list, so the rule table stays
// language-independent.
func canonicalGoal(language, answer string) string {
	seq, ok := catalogs[language]
	if !ok {
		seq = catalogs[DefaultLanguage]
	}
	keys := []string{"teach", "earnHome", "shop", "office"}
	for _, q := range seq {
		if q.ID != BranchQuestionID {
			continue
		}
		for i, opt := range q.Options {
			if opt == answer && i < len(keys) {
				return keys[i]
			}
		}
	}
	return ""
}

func skillChallenges(language string) []model.Question {
	qs, ok := challenges[language]
	if !ok {
		qs = challenges[DefaultLanguage]
	}
	return qs
}

var catalogs = map[string][]model.Question{
	"en": {
		{ID: "q1_1", Round: "Round 1: Aptitude Test", Kind: model.KindMCQ,
			Prompt: "Which number completes the pattern: 2, 4, 6, __?", Options: []string{"7", "8", "9", "10"}},
		{ID: "q1_2", Round: "Round 1: Aptitude Test", Kind: model.KindMCQ,
			Prompt: "Which of these is a correct email format?", Options: []string{"test@email", "test.email.com", "test@email.com", "test@.com"}},
		{ID: "q2_1", Round: "Round 2: Digital Literacy", Kind: model.KindMCQImage,
			Prompt: "Which icon represents a web browser?", Options: []string{"/icons/chrome.svg", "/icons/whatsapp.svg", "/icons/camera.svg", "/icons/maps.svg"}},
		{ID: "q2_2", Round: "Round 2: Digital Literacy", Kind: model.KindMCQ,
			Prompt: "Which button would you click to search on Google?", Options: []string{"Search Button", "Image Button", "Mic Button", "Settings Button"}},
		{ID: "q3_1", Round: "Round 3: Communication", Kind: model.KindTyping,
			Prompt: "Please type the following sentence exactly:", Sentence: "The quick brown fox jumps over the lazy dog."},
		{ID: "q3_2", Round: "Round 3: Communication", Kind: model.KindTextarea,
			Prompt: "Write 2-3 lines about yourself."},
		{ID: "q4_1", Round: "Round 4: Career Preference", Kind: model.KindLikert,
			Prompt: "I enjoy working on computers.", Options: []string{"Agree", "Neutral", "Disagree"}},
		{ID: "q4_2", Round: "Round 4: Career Preference", Kind: model.KindLikert,
			Prompt: "I prefer creative tasks over analytical ones.", Options: []string{"Agree", "Neutral", "Disagree"}},
		{ID: "career_goal", Round: "Round 4: Career Preference", Kind: model.KindMCQ,
			Prompt: "What is your main career goal?", Options: []string{"Teach others", "Earn from home", "Start a shop", "Work in an office"}},
	},
	"hi": {
		{ID: "q1_1", Round: "राउंड 1: योग्यता परीक्षा", Kind: model.KindMCQ,
			Prompt: "कौन सी संख्या पैटर्न पूरा करती है: 2, 4, 6, __?", Options: []string{"7", "8", "9", "10"}},
		{ID: "q1_2", Round: "राउंड 1: योग्यता परीक्षा", Kind: model.KindMCQ,
			Prompt: "इनमें से कौन सा सही ईमेल प्रारूप है?", Options: []string{"test@email", "test.email.com", "test@email.com", "test@.com"}},
		{ID: "q2_1", Round: "राउंड 2: डिजिटल साक्षरता", Kind: model.KindMCQImage,
			Prompt: "कौन सा आइकन वेब ब्राउज़र दर्शाता है?", Options: []string{"/icons/chrome.svg", "/icons/whatsapp.svg", "/icons/camera.svg", "/icons/maps.svg"}},
		{ID: "q2_2", Round: "राउंड 2: डिजिटल साक्षरता", Kind: model.KindMCQ,
			Prompt: "Google पर खोजने के लिए आप कौन सा बटन दबाएंगे?", Options: []string{"सर्च बटन", "इमेज बटन", "माइक बटन", "सेटिंग्स बटन"}},
		{ID: "q3_1", Round: "राउंड 3: संचार", Kind: model.KindTyping,
			Prompt: "कृपया निम्न वाक्य ठीक वैसे ही टाइप करें:", Sentence: "The quick brown fox jumps over the lazy dog."},
		{ID: "q3_2", Round: "राउंड 3: संचार", Kind: model.KindTextarea,
			Prompt: "अपने बारे में 2-3 पंक्तियाँ लिखें।"},
		{ID: "q4_1", Round: "राउंड 4: करियर वरीयता", Kind: model.KindLikert,
			Prompt: "मुझे कंप्यूटर पर काम करना पसंद है।", Options: []string{"सहमत", "तटस्थ", "असहमत"}},
		{ID: "q4_2", Round: "राउंड 4: करियर वरीयता", Kind: model.KindLikert,
			Prompt: "मैं विश्लेषणात्मक कार्यों की तुलना में रचनात्मक कार्य पसंद करता/करती हूँ।", Options: []string{"सहमत", "तटस्थ", "असहमत"}},
		{ID: "career_goal", Round: "राउंड 4: करियर वरीयता", Kind: model.KindMCQ,
			Prompt: "आपका मुख्य करियर लक्ष्य क्या है?", Options: []string{"दूसरों को सिखाना", "घर से कमाना", "दुकान शुरू करना", "ऑफिस में काम करना"}},
	},
	"kn": {
		{ID: "q1_1", Round: "ಸುತ್ತು 1: ಸಾಮರ್ಥ್ಯ ಪರೀಕ್ಷೆ", Kind: model.KindMCQ,
			Prompt: "ಯಾವ ಸಂಖ್ಯೆ ಮಾದರಿಯನ್ನು ಪೂರ್ಣಗೊಳಿಸುತ್ತದೆ: 2, 4, 6, __?", Options: []string{"7", "8", "9", "10"}},
		{ID: "q1_2", Round: "ಸುತ್ತು 1: ಸಾಮರ್ಥ್ಯ ಪರೀಕ್ಷೆ", Kind: model.KindMCQ,
			Prompt: "ಇವುಗಳಲ್ಲಿ ಸರಿಯಾದ ಇಮೇಲ್ ಸ್ವರೂಪ ಯಾವುದು?", Options: []string{"test@email", "test.email.com", "test@email.com", "test@.com"}},
		{ID: "q2_1", Round: "ಸುತ್ತು 2: ಡಿಜಿಟಲ್ ಸಾಕ್ಷರತೆ", Kind: model.KindMCQImage,
			Prompt: "ಯಾವ ಐಕಾನ್ ವೆಬ್ ಬ್ರೌಸರ್ ಅನ್ನು ಸೂಚಿಸುತ್ತದೆ?", Options: []string{"/icons/chrome.svg", "/icons/whatsapp.svg", "/icons/camera.svg", "/icons/maps.svg"}},
		{ID: "q2_2", Round: "ಸುತ್ತು 2: ಡಿಜಿಟಲ್ ಸಾಕ್ಷರತೆ", Kind: model.KindMCQ,
			Prompt: "Google ನಲ್ಲಿ ಹುಡುಕಲು ನೀವು ಯಾವ ಬಟನ್ ಒತ್ತುತ್ತೀರಿ?", Options: []string{"ಸರ್ಚ್ ಬಟನ್", "ಇಮೇಜ್ ಬಟನ್", "ಮೈಕ್ ಬಟನ್", "ಸೆಟ್ಟಿಂಗ್ಸ್ ಬಟನ್"}},
		{ID: "q3_1", Round: "ಸುತ್ತು 3: ಸಂವಹನ", Kind: model.KindTyping,
			Prompt: "ದಯವಿಟ್ಟು ಕೆಳಗಿನ ವಾಕ್ಯವನ್ನು ಹಾಗೆಯೇ ಟೈಪ್ ಮಾಡಿ:", Sentence: "The quick brown fox jumps over the lazy dog."},
		{ID: "q3_2", Round: "ಸುತ್ತು 3: ಸಂವಹನ", Kind: model.KindTextarea,
			Prompt: "ನಿಮ್ಮ ಬಗ್ಗೆ 2-3 ಸಾಲುಗಳನ್ನು ಬರೆಯಿರಿ."},
		{ID: "q4_1", Round: "ಸುತ್ತು 4: ವೃತ್ತಿ ಆದ್ಯತೆ", Kind: model.KindLikert,
			Prompt: "ನನಗೆ ಕಂಪ್ಯೂಟರ್‌ನಲ್ಲಿ ಕೆಲಸ ಮಾಡುವುದು ಇಷ್ಟ.", Options: []string{"ಒಪ್ಪುತ್ತೇನೆ", "ತಟಸ್ಥ", "ಒಪ್ಪುವುದಿಲ್ಲ"}},
		{ID: "q4_2", Round: "ಸುತ್ತು 4: ವೃತ್ತಿ ಆದ್ಯತೆ", Kind: model.KindLikert,
			Prompt: "ವಿಶ್ಲೇಷಣಾತ್ಮಕ ಕೆಲಸಗಳಿಗಿಂತ ಸೃಜನಶೀಲ ಕೆಲಸಗಳನ್ನು ನಾನು ಇಷ್ಟಪಡುತ್ತೇನೆ.", Options: []string{"ಒಪ್ಪುತ್ತೇನೆ", "ತಟಸ್ಥ", "ಒಪ್ಪುವುದಿಲ್ಲ"}},
		{ID: "career_goal", Round: "ಸುತ್ತು 4: ವೃತ್ತಿ ಆದ್ಯತೆ", Kind: model.KindMCQ,
			Prompt: "ನಿಮ್ಮ ಮುಖ್ಯ ವೃತ್ತಿ ಗುರಿ ಏನು?", Options: []string{"ಇತರರಿಗೆ ಕಲಿಸುವುದು", "ಮನೆಯಿಂದ ಗಳಿಸುವುದು", "ಅಂಗಡಿ ಪ್ರಾರಂಭಿಸುವುದು", "ಕಚೇರಿಯಲ್ಲಿ ಕೆಲಸ"}},
	},
}

var challenges = map[string][]model.Question{
	"en": {
		{ID: "q5_creative", Round: "Round 5: Skill Challenge", Kind: model.KindMCQ,
			Prompt: "Which color combination do you find most appealing for a poster?", Options: []string{"Blue & Yellow", "Black & Red", "Green & White", "Purple & Orange"}},
		{ID: "q5_business", Round: "Round 5: Skill Challenge", Kind: model.KindMCQ,
			Prompt: "A customer wants to buy 3 items priced at ₹15, ₹25, and ₹10. What is the total cost?", Options: []string{"₹40", "₹45", "₹50", "₹55"}},
		{ID: "q5_tech", Round: "Round 5: Skill Challenge", Kind: model.KindMCQ,
			Prompt: "Which of these is a correct HTML tag for a heading?", Options: []string{"<h1>", "<head>", "<title>", "<p>"}},
		{ID: "q5_freelance", Round: "Round 5: Skill Challenge", Kind: model.KindMCQ,
			Prompt: "Which task would you choose for a quick freelance job?", Options: []string{"Tutoring a student online", "Designing a logo", "Entering shop data", "Writing a product review"}},
	},
	"hi": {
		{ID: "q5_creative", Round: "राउंड 5: कौशल चुनौती", Kind: model.KindMCQ,
			Prompt: "पोस्टर के लिए कौन सा रंग संयोजन आपको सबसे आकर्षक लगता है?", Options: []string{"नीला और पीला", "काला और लाल", "हरा और सफेद", "बैंगनी और नारंगी"}},
		{ID: "q5_business", Round: "राउंड 5: कौशल चुनौती", Kind: model.KindMCQ,
			Prompt: "एक ग्राहक ₹15, ₹25 और ₹10 की 3 वस्तुएँ खरीदना चाहता है। कुल लागत क्या है?", Options: []string{"₹40", "₹45", "₹50", "₹55"}},
		{ID: "q5_tech", Round: "राउंड 5: कौशल चुनौती", Kind: model.KindMCQ,
			Prompt: "शीर्षक के लिए सही HTML टैग कौन सा है?", Options: []string{"<h1>", "<head>", "<title>", "<p>"}},
		{ID: "q5_freelance", Round: "राउंड 5: कौशल चुनौती", Kind: model.KindMCQ,
			Prompt: "त्वरित फ्रीलांस काम के लिए आप कौन सा कार्य चुनेंगे?", Options: []string{"ऑनलाइन ट्यूशन", "लोगो डिज़ाइन", "दुकान का डेटा एंट्री", "उत्पाद समीक्षा लिखना"}},
	},
	"kn": {
		{ID: "q5_creative", Round: "ಸುತ್ತು 5: ಕೌಶಲ್ಯ ಸವಾಲು", Kind: model.KindMCQ,
			Prompt: "ಪೋಸ್ಟರ್‌ಗೆ ಯಾವ ಬಣ್ಣ ಸಂಯೋಜನೆ ನಿಮಗೆ ಹೆಚ್ಚು ಆಕರ್ಷಕ?", Options: []string{"ನೀಲಿ ಮತ್ತು ಹಳದಿ", "ಕಪ್ಪು ಮತ್ತು ಕೆಂಪು", "ಹಸಿರು ಮತ್ತು ಬಿಳಿ", "ನೇರಳೆ ಮತ್ತು ಕಿತ್ತಳೆ"}},
		{ID: "q5_business", Round: "ಸುತ್ತು 5: ಕೌಶಲ್ಯ ಸವಾಲು", Kind: model.KindMCQ,
			Prompt: "ಗ್ರಾಹಕರು ₹15, ₹25 ಮತ್ತು ₹10 ಬೆಲೆಯ 3 ವಸ್ತುಗಳನ್ನು ಖರೀದಿಸಲು ಬಯಸುತ್ತಾರೆ. ಒಟ್ಟು ವೆಚ್ಚ ಎಷ್ಟು?", Options: []string{"₹40", "₹45", "₹50", "₹55"}},
		{ID: "q5_tech", Round: "ಸುತ್ತು 5: ಕೌಶಲ್ಯ ಸವಾಲು", Kind: model.KindMCQ,
			Prompt: "ಶೀರ್ಷಿಕೆಗೆ ಸರಿಯಾದ HTML ಟ್ಯಾಗ್ ಯಾವುದು?", Options: []string{"<h1>", "<head>", "<title>", "<p>"}},
		{ID: "q5_freelance", Round: "ಸುತ್ತು 5: ಕೌಶಲ್ಯ ಸವಾಲು", Kind: model.KindMCQ,
			Prompt: "ತ್ವರಿತ ಫ್ರೀಲಾನ್ಸ್ ಕೆಲಸಕ್ಕೆ ನೀವು ಯಾವ ಕಾರ್ಯ ಆಯ್ಕೆ ಮಾಡುತ್ತೀರಿ?", Options: []string{"ಆನ್‌ಲೈನ್ ಪಾಠ ಹೇಳುವುದು", "ಲೋಗೋ ವಿನ್ಯಾಸ", "ಅಂಗಡಿ ಡೇಟಾ ನಮೂದು", "ಉತ್ಪನ್ನ ವಿಮರ್ಶೆ ಬರೆಯುವುದು"}},
	},
}

package guide

import "tunisiaguide/pkg/domain"

//nolint: gochecknoglobals,lll
var categories = []domain.GuideCategory{
	{
		ID:    domain.GuideCategoryPhrases,
		Title: "Common Phrases",
		Color: "#3B82F6",
		Phrases: []domain.Phrase{
			{Arabic: "أهلاً وسهلاً", Phonetic: "Ahlan wa sahlan", English: "Welcome / Hello"},
			{Arabic: "شكراً", Phonetic: "Shukran", English: "Thank you"},
			{Arabic: "من فضلك", Phonetic: "Min fadlik", English: "Please"},
			{Arabic: "أعذرني", Phonetic: "A'dhurni", English: "Excuse me"},
			{Arabic: "كم الثمن؟", Phonetic: "Kam ath-thaman?", English: "How much?"},
			{Arabic: "أين الحمام؟", Phonetic: "Ayna al-hammam?", English: "Where is the bathroom?"},
			{Arabic: "لا أفهم", Phonetic: "La afham", English: "I don't understand"},
			{Arabic: "هل تتكلم الإنجليزية؟", Phonetic: "Hal tatakallam al-ingliziyya?", English: "Do you speak English?"},
			{Arabic: "أين...؟", Phonetic: "Ayna...?", English: "Where is...?"},
			{Arabic: "كيف الحال؟", Phonetic: "Kayf al-hal?", English: "How are you?"},
			{Arabic: "بخير، شكراً", Phonetic: "Bi-khayr, shukran", English: "Fine, thank you"},
			{Arabic: "مع السلامة", Phonetic: "Ma'a as-salama", English: "Goodbye"},
		},
	},
	{
		ID:    domain.GuideCategoryCuisine,
		Title: "Local Cuisine",
		Color: "#10B981",
		Cuisine: []domain.CuisineItem{
			{Name: "Couscous", Description: "Traditional semolina dish, usually served on Fridays with lamb and vegetables"},
			{Name: "Brik", Description: "Crispy pastry filled with egg, tuna, and herbs - a popular appetizer"},
			{Name: "Harissa", Description: "Spicy chili paste - a Tunisian staple used in many dishes"},
			{Name: "Mechouia", Description: "Grilled vegetable salad with tomatoes, peppers, and onions"},
			{Name: "Makroud", Description: "Sweet semolina pastry filled with dates, especially from Kairouan"},
			{Name: "Mint Tea", Description: "Traditional tea served throughout the day, especially after meals"},
			{Name: "Chorba", Description: "Traditional soup with lamb, vegetables, and spices"},
			{Name: "Ojja", Description: "Spicy tomato and egg dish, often served for breakfast"},
			{Name: "Lablabi", Description: "Chickpea soup with bread, eggs, and harissa"},
			{Name: "Bambalouni", Description: "Traditional Tunisian donuts, often sold by street vendors"},
		},
	},
	{
		ID:    domain.GuideCategoryTransport,
		Title: "Transportation",
		Color: "#8B5CF6",
		Transport: []domain.TransportInfo{
			{Title: "Metro & Tram (Tunis)", Info: "Modern light rail system in Tunis. Tickets: 0.5 TND. Connects major areas."},
			{Title: "TGM Train", Info: "Connects Tunis to La Marsa via Carthage and Sidi Bou Said. Scenic coastal route."},
			{Title: "Louages", Info: "Shared taxis for intercity travel. Faster than buses, leave when full."},
			{Title: "City Taxis", Info: "Yellow taxis in cities. Always negotiate fare beforehand or use meter."},
			{Title: "Buses (SNTRI)", Info: "National bus company connecting all major cities. Affordable but can be crowded."},
			{Title: "Car Rental", Info: "International license required. Drive on the right side. Good for exploring rural areas."},
			{Title: "Domestic Flights", Info: "Limited domestic flights between Tunis, Sfax, and Tozeur."},
			{Title: "Metro du Sahel", Info: "Light rail in Sousse-Monastir area connecting coastal resorts."},
		},
	},
	{
		ID:    domain.GuideCategoryCulture,
		Title: "Cultural Tips",
		Color: "#F59E0B",
		Culture: []domain.CultureTip{
			{Tip: "Greeting Customs", Info: "Handshakes are common. Close friends may kiss on both cheeks. Use right hand for greetings."},
			{Tip: "Dress Code", Info: "Dress modestly, especially when visiting mosques. Cover shoulders and knees."},
			{Tip: "Friday Prayer", Info: "Many businesses close during Friday prayers (12-2 PM). Plan accordingly."},
			{Tip: "Ramadan Etiquette", Info: "Respect fasting hours. Many restaurants close during the day. Avoid eating in public."},
			{Tip: "Hospitality", Info: "Tunisians are very hospitable. It's polite to accept offered tea or coffee."},
			{Tip: "Bargaining", Info: "Expected in souks and markets. Start at 50% of asking price and negotiate respectfully."},
			{Tip: "Photography", Info: "Ask permission before photographing people. Avoid military installations."},
			{Tip: "Tipping", Info: "Round up bills in restaurants. 10% is standard for good service."},
			{Tip: "Language", Info: "Arabic and French are official languages. Many speak some English in tourist areas."},
			{Tip: "Time Concept", Info: "Punctuality is appreciated but social events may start later than scheduled."},
		},
	},
}

//nolint: gochecknoglobals
var emergencyContacts = []domain.EmergencyContact{
	{Service: "Police", Number: "197"},
	{Service: "Fire Department", Number: "198"},
	{Service: "Medical Emergency", Number: "190"},
	{Service: "Tourist Police", Number: "71 341 077"},
	{Service: "National Guard", Number: "193"},
	{Service: "Civil Protection", Number: "198"},
}

package words

// Difficulty tiers used by the built-in catalogue.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Default is the built-in location catalogue. Name tables cover the shipped
// client languages; English is the canonical entry used for spy guesses.
var Default = Catalogue{
	{
		Names:      map[string]string{"en": "Hospital", "es": "Hospital", "fr": "Hôpital", "sv": "Sjukhus"},
		Roles:      []string{"Doctor", "Nurse", "Patient", "Surgeon", "Receptionist", "Paramedic"},
		Category:   "public",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Restaurant", "es": "Restaurante", "fr": "Restaurant", "sv": "Restaurang"},
		Roles:      []string{"Chef", "Waiter", "Customer", "Manager", "Bartender", "Host"},
		Category:   "leisure",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "School", "es": "Escuela", "fr": "École", "sv": "Skola"},
		Roles:      []string{"Teacher", "Student", "Principal", "Janitor", "Librarian", "Coach"},
		Category:   "public",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Airport", "es": "Aeropuerto", "fr": "Aéroport", "sv": "Flygplats"},
		Roles:      []string{"Pilot", "Flight Attendant", "Passenger", "Security Officer", "Customs Officer", "Baggage Handler"},
		Category:   "travel",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Beach", "es": "Playa", "fr": "Plage", "sv": "Strand"},
		Roles:      []string{"Lifeguard", "Surfer", "Tourist", "Ice Cream Vendor", "Photographer", "Fisherman"},
		Category:   "outdoors",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Movie Theater", "es": "Cine", "fr": "Cinéma", "sv": "Biograf"},
		Roles:      []string{"Projectionist", "Usher", "Moviegoer", "Cashier", "Popcorn Vendor", "Critic"},
		Category:   "leisure",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Supermarket", "es": "Supermercado", "fr": "Supermarché", "sv": "Mataffär"},
		Roles:      []string{"Cashier", "Shopper", "Butcher", "Stock Clerk", "Security Guard", "Store Manager"},
		Category:   "public",
		Difficulty: DifficultyEasy,
	},
	{
		Names:      map[string]string{"en": "Train Station", "es": "Estación de tren", "fr": "Gare", "sv": "Tågstation"},
		Roles:      []string{"Conductor", "Ticket Inspector", "Commuter", "Station Master", "Vendor", "Tourist"},
		Category:   "travel",
		Difficulty: DifficultyMedium,
	},
	{
		Names:      map[string]string{"en": "Cruise Ship", "es": "Crucero", "fr": "Navire de croisière", "sv": "Kryssningsfartyg"},
		Roles:      []string{"Captain", "Deckhand", "Passenger", "Entertainer", "Chef", "Bartender"},
		Category:   "travel",
		Difficulty: DifficultyMedium,
	},
	{
		Names:      map[string]string{"en": "Bank", "es": "Banco", "fr": "Banque", "sv": "Bank"},
		Roles:      []string{"Teller", "Manager", "Customer", "Security Guard", "Loan Officer", "Robber"},
		Category:   "work",
		Difficulty: DifficultyMedium,
	},
	{
		Names:      map[string]string{"en": "Casino", "es": "Casino", "fr": "Casino", "sv": "Kasino"},
		Roles:      []string{"Dealer", "Gambler", "Bouncer", "Bartender", "Pit Boss", "Card Counter"},
		Category:   "leisure",
		Difficulty: DifficultyMedium,
	},
	{
		Names:      map[string]string{"en": "Theater", "es": "Teatro", "fr": "Théâtre", "sv": "Teater"},
		Roles:      []string{"Actor", "Director", "Stagehand", "Audience Member", "Usher", "Playwright"},
		Category:   "leisure",
		Difficulty: DifficultyMedium,
	},
	{
		Names:      map[string]string{"en": "Submarine", "es": "Submarino", "fr": "Sous-marin", "sv": "Ubåt"},
		Roles:      []string{"Captain", "Sonar Operator", "Cook", "Engineer", "Navigator", "Torpedo Officer"},
		Category:   "military",
		Difficulty: DifficultyHard,
	},
	{
		Names:      map[string]string{"en": "Space Station", "es": "Estación espacial", "fr": "Station spatiale", "sv": "Rymdstation"},
		Roles:      []string{"Commander", "Scientist", "Engineer", "Medic", "Pilot", "Mission Specialist"},
		Category:   "science",
		Difficulty: DifficultyHard,
	},
	{
		Names:      map[string]string{"en": "Polar Research Base", "es": "Base polar", "fr": "Base polaire", "sv": "Polarforskningsstation"},
		Roles:      []string{"Expedition Leader", "Meteorologist", "Biologist", "Mechanic", "Cook", "Radio Operator"},
		Category:   "science",
		Difficulty: DifficultyHard,
	},
	{
		Names:      map[string]string{"en": "Embassy", "es": "Embajada", "fr": "Ambassade", "sv": "Ambassad"},
		Roles:      []string{"Ambassador", "Diplomat", "Secretary", "Security Officer", "Translator", "Visa Applicant"},
		Category:   "work",
		Difficulty: DifficultyHard,
	},
}

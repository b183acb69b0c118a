package projects

import "github.com/trekfolio/brochure-backend/internal/projects/domain"

// DefaultProject is the built-in brochure template used to seed a first
// project for a new user. Every section carries placeholder content so the
// preview renders something printable straight away.
func DefaultProject() domain.ProjectCreate {
	return domain.ProjectCreate{
		Header: domain.Header{
			Phone:   "+91 98765 43210",
			Email:   "hello@yourtreks.com",
			Website: "www.yourtreks.com",
			Links: []domain.SocialLink{
				{Platform: domain.PlatformInstagram, URL: "https://instagram.com/yourtreks", Alias: "@yourtreks"},
			},
		},
		Brand: domain.Brand{
			Title:    "Your Treks",
			Subtitle: "Guided Himalayan adventures",
		},
		Hero: domain.Hero{
			Badge:    "Trek of the season",
			Title:    "Kedarkantha Summit Trek",
			Location: "Uttarakhand, India",
			Images:   []string{},
			Stats: domain.Stats{
				Duration:   "6 days",
				Altitude:   "12,500 ft",
				Difficulty: "Easy to moderate",
			},
		},
		Overview: domain.Overview{
			Text: "A classic winter trek through pine forests and high meadows, " +
				"finishing with a 360-degree summit view of the Greater Himalaya. " +
				"Ideal for first-time trekkers with a reasonable fitness level.",
		},
		Leader: domain.Leader{
			Name: "Trek Leader",
			Role: "Certified mountaineer",
		},
		Itinerary: []domain.ItineraryDay{
			{
				Day:         "Day 1",
				Badge:       "Drive",
				Title:       "Arrival at base camp",
				Description: "Scenic drive from Dehradun to Sankri, evening briefing and gear check.",
				Images:      []string{},
			},
			{
				Day:         "Day 2",
				Badge:       "Trek",
				Title:       "Forest trail to first camp",
				Description: "A gentle climb through oak and pine forest to the campsite clearing.",
				Images:      []string{},
			},
			{
				Day:         "Day 3",
				Badge:       "Summit",
				Title:       "Summit push and return",
				Description: "Pre-dawn start for the summit, sunrise at the top, descent to camp.",
				Images:      []string{},
			},
		},
		Inclusions: []domain.Inclusion{
			{Icon: "restaurant", Title: "All meals", Description: "Hot vegetarian meals from dinner on day 1 to breakfast on the last day."},
			{Icon: "camping", Title: "Camping gear", Description: "Tents, sleeping bags and mats rated for the season."},
			{Icon: "hiking", Title: "Expert guides", Description: "Certified trek leader and local support staff."},
		},
		ThingsToCarry: []domain.CarryItem{
			{Icon: "backpack", Label: "50L rucksack"},
			{Icon: "ac_unit", Label: "Warm layers"},
			{Icon: "water_drop", Label: "Two water bottles"},
			{Icon: "medical_services", Label: "Personal medication"},
		},
		FAQs: []domain.FAQ{
			{
				Question: "Is this trek suitable for beginners?",
				Answer:   "Yes. The trail is graded easy to moderate and the itinerary builds in acclimatization.",
			},
			{
				Question: "What will the temperature be like?",
				Answer:   "Daytime temperatures of 8-15C, dropping below freezing at night in winter.",
			},
		},
		Footer: domain.Footer{
			Title:       "Ready for the mountains?",
			Description: "Call or message us to reserve your spot on the next batch.",
			Copyright:   "© Your Treks. All rights reserved.",
		},
		Styles: domain.SectionStyles{
			domain.SectionHeader:        {TextColor: "#ffffff", BackgroundColor: "#1b3022"},
			domain.SectionHero:          {TextColor: "#1b3022", BackgroundColor: "#ffffff"},
			domain.SectionOverview:      {TextColor: "#1b3022", BackgroundColor: "#ffffff"},
			domain.SectionLeader:        {TextColor: "#ffffff", BackgroundColor: "#1b3022"},
			domain.SectionItinerary:     {TextColor: "#1b3022", BackgroundColor: "#ffffff"},
			domain.SectionInclusions:    {TextColor: "#1b3022", BackgroundColor: "#f5f9f6"},
			domain.SectionThingsToCarry: {TextColor: "#1b3022", BackgroundColor: "#ffffff"},
			domain.SectionFAQs:          {TextColor: "#1b3022", BackgroundColor: "#f5f9f6"},
			domain.SectionFooter:        {TextColor: "#ffffff", BackgroundColor: "#1b3022"},
		},
	}
}

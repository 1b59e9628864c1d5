package resume

// DefaultDocument returns the seed document used on first start and after a
// reset. Seed ids are short numerics; freshly created entries get UUIDs, so
// the two never collide.
func DefaultDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			FullName: "JONATHAN DOE",
			Title:    "Web Designer",
			Phone:    "+1 222 333 4444",
			Email:    "your.email@example.com",
			Website:  "www.yourwebsite.com",
			Address:  "123 Street Name, City, Country",
			PhotoURL: nil,
		},
		Summary: "Lorem ipsum dolor sit amet, consectetuer adipiscing elit. Aenean commodo ligula eget dolor. Aenean massa. Cum sociis natoque penatibus et magnis dis parturient montes, nascetur ridiculus mus. Donec quam felis, ultricies nec, pellentesque eu, pretium quis, sem.",
		Experience: []Experience{
			{
				ID:          "1",
				Role:        "WEBDESIGNER",
				Company:     "Company Name",
				Period:      "2016 - PRES",
				Description: "Lorem ipsum dolor sit amet, consectetuer adipiscing elit. Aenean commodo ligula eget dolor. Aenean massa.",
			},
			{
				ID:          "2",
				Role:        "TRAINEE",
				Company:     "Company Name",
				Period:      "2014 - 2016",
				Description: "Lorem ipsum dolor sit amet, consectetuer adipiscing elit. Aenean commodo ligula eget dolor. Aenean massa.",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Degree:      "MASTER DEGREE",
				Institution: "University Name",
				Year:        "2012 - 2014",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "Photoshop", Level: 90},
			{ID: "2", Name: "Illustrator", Level: 80},
			{ID: "3", Name: "Indesign", Level: 70},
		},
		Interests: []string{"Music", "Reading", "Traveling"},
		Portfolio: Portfolio{
			Title:       "PORTFOLIO",
			Description: "Check out my latest work at www.myportfolio.com",
		},
		SectionOrder: []string{SectionSummary, SectionExperience, SectionEducation, SectionPortfolio},
		ActiveItemID: nil,
		Layout: Layout{
			SectionGap: 48,
			SkillsMode: SkillsModeList,
		},
	}
}

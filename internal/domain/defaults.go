package domain

// Default returns the built-in résumé. Every call returns fresh lists, so the
// result can be handed out without sharing state with other callers.
func Default() Document {
	return Document{
		Name:               "Alex Morgan",
		Initials:           "AM",
		Location:           "Lisbon, Portugal",
		LocationLink:       "https://maps.app.goo.gl/lisbon",
		About:              "Backend Developer",
		PersonalWebsiteURL: "https://github.com/alex-morgan",
		Summary: "Backend-focused software engineer with several years of hands-on experience building scalable services.\n\n" +
			"Designs RESTful APIs in microservice environments and cares about operability, test coverage and clear documentation.\n\n" +
			"Looking for fully remote opportunities to contribute backend expertise to impactful systems.",
		Contact: Contact{
			Email: "alex.morgan@example.com",
			Tel:   "+351 910 000 000",
			Social: []Social{
				{Name: "GitHub", URL: "https://github.com/alex-morgan", Icon: "GitHubIcon"},
				{Name: "LinkedIn", URL: "https://www.linkedin.com/in/alex-morgan/", Icon: "LinkedInIcon"},
			},
		},
		Education: []Education{
			{
				School: "University of Lisbon",
				Degree: "Master's degree in Computer Science and Engineering",
				Start:  "September 2016",
				End:    "July 2018",
			},
			{
				School: "University of Lisbon",
				Degree: "Bachelor's degree in Computer Science",
				Start:  "September 2013",
				End:    "July 2016",
			},
		},
		Work: []Work{
			{
				Company: "Northwind Logistics",
				Link:    "https://northwind.example.com/",
				Title:   "Senior Backend Engineer",
				Start:   "March 2022",
				End:     "",
				Description: "### Key Projects & Achievements\n\n" +
					"*   **Shipment Tracking Platform**\n" +
					"    Rebuilt the event ingestion pipeline with Redis-based flow control.\n" +
					"    → Improved throughput and stability under peak load.\n\n" +
					"*   **Document Generation Service**\n" +
					"    Replaced template rendering with a streaming generator.\n" +
					"    → Cut report latency for large customers.",
				Badges: []string{"Remote"},
			},
			{
				Company: "Contoso Software",
				Link:    "https://contoso.example.com/",
				Title:   "Intern → Programmer → Program Analyst",
				Start:   "February 2018",
				End:     "February 2022",
				Description: "### Technical Highlights\n\n" +
					"*   **MongoDB Optimization**\n" +
					"    Resolved replication delays by tuning read and write concerns.\n\n" +
					"*   **CI/CD Flow Design**\n" +
					"    Proposed an automated Jenkins pipeline later adopted by the team.",
				Badges: []string{},
			},
		},
		Skills: Skills{
			Core:     []string{"Go", "Java", "Spring Boot", "MongoDB", "RESTful APIs", "Redis", "Docker"},
			Familiar: []string{"React.js", "Node.js", "PostgreSQL", "HTML/CSS/JS"},
			Tools:    []string{"GitLab", "Postman", "Figma", "Linux CLI"},
		},
		Projects: []Project{
			{
				Title:       "Trailhead",
				Description: "Browser extension for debugging web applications: screenshots, screen recording and bug report generation.",
				TechStack:   []string{"TypeScript", "Browser Extension", "PostgreSQL"},
				Link:        Link{Label: "trailhead.dev", Href: "https://trailhead.dev/"},
			},
		},
	}
}

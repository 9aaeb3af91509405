package seed

import "github.com/techfolio/portfolio-api/internal/portfolio"

func ptr[T any](v T) *T { return &v }

func DemoProfile() portfolio.Profile {
	return portfolio.Profile{
		Name:  "Max Mustermann",
		Title: "Elektroniker & IT-Techniker",
		Bio: "Ich entwickle robuste Hardware- und Softwarelösungen – von Leiterplatten" +
			" bis Cloud-Automation. Mein Fokus: zuverlässige Systeme mit sauberem" +
			" Design und klarer Benutzererfahrung.",
		Location: ptr("Berlin, DE"),
		Email:    ptr("max@example.com"),
		Socials: map[string]string{
			"github":   "https://github.com/",
			"linkedin": "https://www.linkedin.com/",
		},
	}
}

func DemoSkills() []portfolio.Skill {
	return []portfolio.Skill{
		{Category: "Elektronik", Name: "PCB-Design (KiCad)", Level: ptr(5)},
		{Category: "Elektronik", Name: "Löten SMD/THT", Level: ptr(5)},
		{Category: "Elektronik", Name: "EMV & Messmittel", Level: ptr(4)},
		{Category: "IT", Name: "Python & FastAPI", Level: ptr(5)},
		{Category: "IT", Name: "Embedded (C/C++)", Level: ptr(4)},
		{Category: "IT", Name: "Linux & Docker", Level: ptr(5)},
		{Category: "IT", Name: "Netzwerk (TCP/IP, VLAN)", Level: ptr(4)},
	}
}

func DemoProjects() []portfolio.Project {
	return []portfolio.Project{
		{
			Title:       "IoT Sensor Node",
			Description: "Ultra-niedriger Energieverbrauch, MQTT over TLS, OTA-Updates.",
			Tags:        []string{"PCB", "ESP32", "MQTT"},
			Link:        ptr("#"),
		},
		{
			Title:       "Automatisiertes Test-Rig",
			Description: "Hardware-in-the-Loop mit Python, Relais-Matrix, grafische Reports.",
			Tags:        []string{"Python", "Hardware", "HIL"},
			Link:        ptr("#"),
		},
		{
			Title:       "Portfolio 3D Experience",
			Description: "Scroll-basierter 3D-Tunnel mit reaktiven Slides.",
			Tags:        []string{"React", "Spline", "UX"},
			Link:        ptr("#"),
		},
	}
}

func DemoExperience() []portfolio.Experience {
	return []portfolio.Experience{{
		Company: "TechWerk GmbH",
		Role:    "Elektroniker / IT-Systemtechniker",
		Start:   "2019-03",
		End:     ptr("2024-08"),
		Summary: ptr("Inbetriebnahme, Monitoring, CI/CD für Edge-Geräte und Backend-Services."),
	}}
}

func DemoEducation() []portfolio.Education {
	return []portfolio.Education{{
		School: "Berufsakademie für Elektrotechnik",
		Degree: "Staatl. gepr. Techniker (ET)",
		Start:  "2015-09",
		End:    ptr("2019-02"),
	}}
}

package daemon

import (
	"gorm.io/gorm"

	"github.com/GoFolio-Admin/GoFolio-Admin/internal/config"
	"github.com/GoFolio-Admin/GoFolio-Admin/internal/db/models"
)

// seed populates each empty content table with starter rows so a fresh
// install renders a complete page. Tables that already hold rows are
// left untouched, so seeding is safe to run on every start.
func seed(_ *config.Config, db *gorm.DB) {
	seedSkills(db)
	seedServices(db)
	seedProjects(db)
	seedExperience(db)
	seedCertifications(db)
	seedSettings(db)
}

func seedSkills(db *gorm.DB) {
	var count int64

	db.Model(&models.Skill{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Skill{
		{Category: "Languages", Name: "Go", OrderNum: 1},
		{Category: "Languages", Name: "Python", OrderNum: 2},
		{Category: "Languages", Name: "SQL", OrderNum: 3},
		{Category: "Tools", Name: "Docker", OrderNum: 1},
		{Category: "Tools", Name: "Git", OrderNum: 2},
		{Category: "Cloud", Name: "AWS", OrderNum: 1},
	})
}

func seedServices(db *gorm.DB) {
	var count int64

	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Service{
		{
			Title:       "Backend Development",
			Description: "Design and implementation of reliable server-side applications and APIs.",
			Icon:        "🛠",
			OrderNum:    1,
		},
		{
			Title:       "Data Analysis",
			Description: "Turning raw data into reports, dashboards, and actionable insight.",
			Icon:        "📊",
			OrderNum:    2,
		},
		{
			Title:       "Consulting",
			Description: "Technical guidance for teams adopting new tooling or infrastructure.",
			Icon:        "💡",
			OrderNum:    3,
		},
	})
}

func seedProjects(db *gorm.DB) {
	var count int64

	db.Model(&models.Project{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Project{
		{
			Title:       "Inventory Tracker",
			Description: "A small warehouse inventory system with barcode scanning and low-stock alerts.",
			Tools:       "Go, SQLite, Docker",
			Results:     "Cut weekly stock-take time roughly in half.",
			OrderNum:    1,
		},
		{
			Title:       "Sales Dashboard",
			Description: "Interactive dashboard aggregating sales figures from several regional sources.",
			Tools:       "Python, Pandas",
			Results:     "Replaced a manual spreadsheet process.",
			OrderNum:    2,
		},
	})
}

func seedExperience(db *gorm.DB) {
	var count int64

	db.Model(&models.Experience{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Experience{
		{
			Organization: "Example Corp",
			Role:         "Software Engineer",
			Description:  "Built and maintained internal services and tooling.",
			StartDate:    "2022",
			EndDate:      "Present",
			OrderNum:     1,
		},
		{
			Organization: "Sample Ltd",
			Role:         "Junior Developer",
			Description:  "Contributed to customer-facing web applications.",
			StartDate:    "2020",
			EndDate:      "2022",
			OrderNum:     2,
		},
	})
}

func seedCertifications(db *gorm.DB) {
	var count int64

	db.Model(&models.Certification{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Certification{
		{Title: "Cloud Practitioner", Issuer: "AWS", DateEarned: "2023", OrderNum: 1},
		{Title: "Scrum Fundamentals", Issuer: "Scrum.org", DateEarned: "2022", OrderNum: 2},
	})
}

func seedSettings(db *gorm.DB) {
	var count int64

	db.Model(&models.Setting{}).Count(&count)
	if count > 0 {
		return
	}

	db.Create(&[]models.Setting{
		{Key: "profile_name", Value: "Jane Doe"},
		{Key: "profile_title", Value: "Software Engineer"},
		{Key: "profile_location", Value: "Berlin, Germany"},
		{Key: "profile_email", Value: "jane@example.com"},
		{Key: "profile_linkedin", Value: "https://www.linkedin.com/in/janedoe"},
		{Key: "profile_summary", Value: "Engineer with a focus on backend systems and data tooling."},
		{Key: "resume_path", Value: "uploads/resume.pdf"},
		{Key: "profile_image", Value: "uploads/profile.jpg"},
	})
}

package roofcms

// Seed content written on first access when the corresponding data file
// does not exist yet, so a fresh deployment renders a sensible site
// before the admin has edited anything.

var defaultPages = []Page{
	{
		Slug:    "about",
		Title:   "About Us",
		Content: "Welcome to our roofing services. We provide professional roofing solutions for residential and commercial properties.",
	},
	{
		Slug:    "contact",
		Title:   "Contact Us",
		Content: "Get in touch with us for a free quote. Call us or fill out the contact form on our website.",
	},
}

var defaultServices = map[string]Service{
	"construction": {
		Title:       "Roof Construction",
		Description: "Professional roof construction services using premium materials.",
	},
	"painting": {
		Title:       "Roof Painting",
		Description: "High-quality roof painting to extend lifespan and enhance appearance.",
	},
	"maintenance": {
		Title:       "Roof Maintenance",
		Description: "Regular maintenance to prevent leaks and extend roof life.",
	},
	"metalProfile": {
		Title:       "Metal Profile Installation",
		Description: "Modern metal profile roofing for durability and style.",
	},
	"tiledRoof": {
		Title:       "Tiled Roofs",
		Description: "Premium tile roofing options for protection and aesthetics.",
	},
	"skylights": {
		Title:       "Skylights Installation",
		Description: "Add natural light with professional skylight installation.",
	},
	"gutterSystem": {
		Title:       "Gutter Systems",
		Description: "Efficient gutter and drainage system installation and repair.",
	},
	"snowRemoval": {
		Title:       "Snow Removal",
		Description: "Safe snow removal services to protect your roof.",
	},
	"leafCleaning": {
		Title:       "Leaf Cleaning",
		Description: "Professional leaf and debris removal from gutters and roof.",
	},
}

var defaultSettings = SiteSettings{
	CompanyName:        "UpRoof Roofing Services",
	CompanyAddress:     "123 Main Street, Your City",
	CompanyPhone:       "+1 (555) 000-0000",
	CompanyEmail:       "info@uproof.com",
	CompanyDescription: "Professional roofing services for residential and commercial properties.",
	SEOTitle:           "Professional Roofing Services | UpRoof",
	SEODescription:     "High-quality roofing installation, repair, and maintenance services.",
	SEOKeywords:        "roofing, roof repair, roof installation, professional roofing",
}

package roofcms

// BlogPost is a blog article managed through the admin area. IDs are
// numeric and auto-incremented; new posts are prepended so the newest
// post lists first.
type BlogPost struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Date     string `json:"date"` // YYYY-MM-DD
	ReadTime string `json:"readTime,omitempty"`
	Author   string `json:"author,omitempty"`
	Content  string `json:"content,omitempty"`
	Status   string `json:"status,omitempty"` // "published" or "draft"
}

// Project is a completed roofing project shown in the portfolio. The
// optional image is stored under the public uploads directory, named
// after the project id.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"` // site-relative path, e.g. /uploads/projects/<id>.jpg
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Page is a static content page keyed by slug.
type Page struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Service is one entry of the keyed services document (services.json).
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

// SiteSettings is the singleton site-wide settings document.
type SiteSettings struct {
	CompanyName        string `json:"companyName"`
	CompanyAddress     string `json:"companyAddress"`
	CompanyPhone       string `json:"companyPhone"`
	CompanyEmail       string `json:"companyEmail"`
	CompanyDescription string `json:"companyDescription"`
	SEOTitle           string `json:"seoTitle"`
	SEODescription     string `json:"seoDescription"`
	SEOKeywords        string `json:"seoKeywords"`
	SocialFacebook     string `json:"socialFacebook"`
	SocialInstagram    string `json:"socialInstagram"`
	SocialLinkedIn     string `json:"socialLinkedIn"`
	SocialTwitter      string `json:"socialTwitter"`
}

package views

// ErrorPageProps holds the data for the error page
type ErrorPageProps struct {
	Code         int
	Title        string
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
	NavLinks     []NavLink
}

func (p ErrorPageProps) backLink() string {
	if p.BackLink == "" {
		return "/"
	}
	return p.BackLink
}

func (p ErrorPageProps) backText() string {
	if p.BackText == "" {
		return "Back to Home"
	}
	return p.BackText
}

// Package portfolio holds the page content and the interactive pieces built
// on it: modals, the contact form stub, notifications and the live region.
package portfolio

type Metric struct {
	Value string
	Label string
}

type Project struct {
	ID           string
	Title        string
	Icon         string
	Description  string
	Metrics      []Metric
	Technologies []string
	Features     []string
	GitHubURL    string
	DemoURL      string
}

type CertLink struct {
	Name string
	URL  string
}

type Skill struct {
	ID            string
	Name          string
	Icon          string
	Level         int
	Description   string
	Projects      []string
	Certification *CertLink
}

type Certification struct {
	ID          string
	Name        string
	Issuer      string
	Logo        string
	Date        string
	Description string
	Skills      []string
	URL         string
}

// Stat is a headline number animated by a counter in the journey section.
type Stat struct {
	Label string
	Value int
}

var projects = []Project{
	{
		ID:          "flight-price",
		Title:       "Flight Price Forecasting & Sentiment Classification",
		Icon:        "[>]",
		Description: "A machine learning application that predicts flight prices and analyzes customer sentiment.",
		Metrics: []Metric{
			{"R2 = 0.84", "Prediction Accuracy"},
			{"96%", "Sentiment Accuracy"},
			{"1000+", "Flights Analyzed"},
			{"30ms", "Avg Response Time"},
		},
		Technologies: []string{"Python", "Scikit-learn", "Pandas", "NumPy", "Flask", "React"},
		Features: []string{
			"Real-time flight price prediction",
			"Customer sentiment analysis",
			"Interactive data visualization",
			"RESTful API integration",
		},
		GitHubURL: "https://github.com/vikasgowda222/Flight-Price-Forecasting-and-Sentiment-Classification-App",
	},
	{
		ID:          "skillforge-ai",
		Title:       "SkillForge AI - Mock Interview App",
		Icon:        "[AI]",
		Description: "An AI-powered mock interview platform with personalized feedback.",
		Metrics: []Metric{
			{"40%", "Score Improvement"},
			{"100+", "Active Users"},
			{"500+", "Interviews Conducted"},
			{"4.8/5", "User Rating"},
		},
		Technologies: []string{"React", "Node.js", "Express", "MongoDB", "OpenAI API", "WebRTC"},
		Features: []string{
			"AI-powered interview simulation",
			"Real-time feedback and scoring",
			"Industry-specific question banks",
			"Progress tracking dashboard",
		},
		GitHubURL: "https://github.com/vikasgowda222/SkillForge-AI-Full-Stack-AI-Mock-Interview-App",
	},
	{
		ID:          "data-viz",
		Title:       "AI-Powered Data Visualization Agent",
		Icon:        "[#]",
		Description: "Turns natural language queries into interactive charts and graphs.",
		Metrics: []Metric{
			{"10+", "Chart Types"},
			{"NLP", "Powered"},
			{"2s", "Avg Generation Time"},
			{"95%", "Query Accuracy"},
		},
		Technologies: []string{"Python", "FastAPI", "LLM Integration", "D3.js", "React"},
		Features: []string{
			"Natural language chart generation",
			"Multiple visualization types",
			"Export capabilities",
		},
		GitHubURL: "https://github.com/vikasgowda222/ai-powered-data-visualizer",
	},
	{
		ID:          "power-management",
		Title:       "Intelligent Power Management System",
		Icon:        "[~]",
		Description: "Computer vision and AI to optimize energy consumption in buildings.",
		Metrics: []Metric{
			{"25%", "Energy Savings"},
			{"OpenCV", "Based"},
			{"24/7", "Monitoring"},
			{"IoT", "Integrated"},
		},
		Technologies: []string{"Python", "OpenCV", "TensorFlow", "IoT Sensors", "Flask", "SQLite"},
		Features: []string{
			"Occupancy detection",
			"Automated lighting control",
			"Energy consumption analytics",
		},
	},
}

var skills = []Skill{
	{
		ID: "python", Name: "Python", Icon: "Py", Level: 95,
		Description: "Data science, machine learning and web development in Python.",
		Projects:    []string{"Flight Price Forecasting", "Data Visualization Agent", "Power Management System"},
		Certification: &CertLink{
			Name: "Python Pro Bootcamp - Udemy",
			URL:  "https://udemy-certificate.s3.amazonaws.com/pdf/UC-d801af64-cc43-4ef5-a99a-9b6f8acf684a.pdf",
		},
	},
	{
		ID: "machine-learning", Name: "Machine Learning", Icon: "ML", Level: 90,
		Description: "Model training, evaluation and deployment across several domains.",
		Projects:    []string{"Flight Price Forecasting", "SkillForge AI", "Power Management System"},
		Certification: &CertLink{
			Name: "Data Analysis with Python - IBM",
			URL:  "https://courses.cognitiveclass.ai/certificates/0a318a7ced874c27b6da0706a7fb95ef",
		},
	},
	{
		ID: "tensorflow", Name: "TensorFlow", Icon: "TF", Level: 85,
		Description: "Building and deploying deep learning models with TensorFlow.",
		Projects:    []string{"SkillForge AI", "Power Management System"},
	},
	{
		ID: "pytorch", Name: "PyTorch", Icon: "PT", Level: 80,
		Description: "Research-style model prototyping with PyTorch.",
		Projects:    []string{"Data Visualization Agent"},
	},
	{
		ID: "sql", Name: "SQL", Icon: "DB", Level: 90,
		Description: "Database design and query optimization.",
		Projects:    []string{"SkillForge AI", "Power Management System"},
	},
	{
		ID: "git", Name: "Git", Icon: "Gt", Level: 88,
		Description: "Version control for collaborative development.",
		Projects:    []string{"All Projects"},
	},
}

var certifications = []Certification{
	{
		ID: "ibm", Name: "Data Analysis with Python", Issuer: "IBM", Logo: "IBM", Date: "2024",
		Description: "Python for data analysis with pandas, numpy and visualization libraries.",
		Skills:      []string{"Python", "Pandas", "NumPy", "Data Visualization", "Statistical Analysis"},
		URL:         "https://courses.cognitiveclass.ai/certificates/0a318a7ced874c27b6da0706a7fb95ef",
	},
	{
		ID: "google", Name: "Google Analytics Certification", Issuer: "Google", Logo: "G", Date: "2024",
		Description: "Web analytics and digital marketing insights.",
		Skills:      []string{"Google Analytics", "Web Analytics", "Data Analysis"},
	},
	{
		ID: "accenture", Name: "Software Engineering Virtual Experience", Issuer: "Accenture", Logo: "A", Date: "2024",
		Description: "Software engineering practice and industry standards.",
		Skills:      []string{"Software Engineering", "Agile Development", "Testing"},
	},
	{
		ID: "fullstack", Name: "Full Stack Skill Certification", Issuer: "OneRoadmap.io", Logo: "FS", Date: "2024",
		Description: "Frontend and backend web technologies.",
		Skills:      []string{"React", "Node.js", "Express", "MongoDB", "JavaScript"},
		URL:         "https://oneroadmap.io/skills/fs/certificate/CERT-FC9656C4",
	},
	{
		ID: "udemy", Name: "Python Pro Bootcamp", Issuer: "Udemy", Logo: "U", Date: "2024",
		Description: "Advanced Python concepts and practical applications.",
		Skills:      []string{"Python", "Django", "Flask", "APIs", "Algorithms"},
		URL:         "https://udemy-certificate.s3.amazonaws.com/pdf/UC-d801af64-cc43-4ef5-a99a-9b6f8acf684a.pdf",
	},
}

var stats = []Stat{
	{"Projects Shipped", 12},
	{"Certifications", 5},
	{"Technologies", 24},
}

// Projects returns the projects in display order.
func Projects() []Project { return projects }

func Skills() []Skill { return skills }

func Certifications() []Certification { return certifications }

func Stats() []Stat { return stats }

func ProjectByID(id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

func SkillByID(id string) (Skill, bool) {
	for _, s := range skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

func CertificationByID(id string) (Certification, bool) {
	for _, c := range certifications {
		if c.ID == id {
			return c, true
		}
	}
	return Certification{}, false
}

package content

var personalInfo = PersonalInfo{
	Name:      "Saief Al Emon",
	Title:     "Frontend Engineer",
	Tagline:   "Building Fast, responsive, and accessible user experiences with React, Next.js, and TypeScript",
	Email:     "saiefalemon@gmail.com",
	GitHub:    "https://github.com/iamsaief",
	LinkedIn:  "https://linkedin.com/in/saiefalemon",
	CodePen:   "https://codepen.io/iamsaief",
	ResumeURL: "/static/resume.pdf",
	Bio: []string{
		"I design and build **fast, responsive, and accessible** websites and web apps. With 6+ years of experience working with React.js, Next.js, and WordPress, I've helped ship tools, dashboards, and digital platforms used by millions globally.",
		"I focus on writing clean, maintainable code and building UI that performs well even under pressure. Whether it's a SaaS product, SPA, or a custom WordPress theme/plugin, I know how to make it run smooth and look sharp.",
	},
}

var socialLinks = []SocialLink{
	{Name: "GitHub", URL: personalInfo.GitHub, Icon: "Github"},
	{Name: "LinkedIn", URL: personalInfo.LinkedIn, Icon: "Linkedin"},
	{Name: "Codepen", URL: personalInfo.CodePen, Icon: "Codepen"},
}

// Most recent first; index 0 is the current role.
var experiences = []Experience{
	{
		Company:  "Storex | Unei Digital | CloudTax | Digiflakes | CoderGens",
		Role:     "Senior Frontend Engineer (Contract)",
		Duration: "2022 - Present",
		Location: "Dhaka, Bangladesh",
		Highlights: []string{
			"Developed and optimized robust user-centric interfaces, analytics dashboards, WP themes and plugins",
			"Built reusable UIs and scalable design systems, using Context API and Redux Toolkit, accelerating development time by 40% across SaaS agencies",
			"Led frontend architecture, Improved code quality and system efficiency through proactive refactoring, reducing redundant code by 25%",
		},
		Technologies: []string{"React.js", "Next.js", "Tailwind CSS", "TypeScript", "PHP", "WordPress"},
	},
	{
		Company:  "Ollyo",
		Role:     "Software Engineer",
		Duration: "2019 - 2022",
		Location: "Dhaka, Bangladesh",
		Highlights: []string{
			"Directed frontend efforts for Tutor LMS (100K+ installs), Qubely, Skillate, and TutorStarter",
			"Helped build WordPress plugins and theme features using React, JavaScript, PHP, ensuring pixel-perfect UI and cross-browser compatibility",
			"Worked with backend teams to build and consume REST APIs. Improving UI consistency and reducing design-related bugs by 30%",
			"Mentored junior devs and improved PR quality through code reviews, and collaborated with 6 backend engineers and QA to meet sprint deadlines",
		},
		Technologies: []string{"React", "JavaScript", "PHP", "HTML", "SASS/CSS"},
	},
	{
		Company:  "Clients Project | Hello Academy",
		Role:     "Frontend Developer",
		Duration: "2018 - 2019",
		Location: "Dhaka, Bangladesh",
		Highlights: []string{
			"Delivered 10+ responsive sites from scratch with HTML/CSS/JS",
			"Helped resolve layout bugs and improve cross-browser performance",
			"Mentored 7 interns on basic UI structure and component logic",
		},
		Technologies: []string{"HTML", "SASS", "JavaScript", "WordPress"},
	},
}

var projects = []Project{
	{
		Name:        "10MS Course Page",
		Year:        "2025",
		Status:      StatusLive,
		Description: "A modern, responsive course product page built with Next.js 15, featuring beautiful UI components, dark mode support, and seamless API integration with the 10minuteschool platform.",
		TechStack:   []string{"Next.js", "TypeScript", "Tailwind CSS", "Context API", "API Integration"},
		GitHubURL:   "https://github.com/iamsaief/10ms-product-page",
		LiveURL:     "https://10ms-product-page.vercel.app/",
		Image:       "/static/projects-10ms-product-page-min.png",
	},
	{
		Name:        "ChronoCraft",
		Year:        "2025",
		Status:      StatusLive,
		Description: "A modern, expressive age calculator app that combines custom React components, advanced date manipulation, and tailored UI/UX to deliver meaningful age insights with personalization & social features",
		TechStack:   []string{"React", "Tailwind CSS", "Context API + Reducer"},
		GitHubURL:   "https://github.com/iamsaief/reactjs/tree/main/src/projects/chrono-craft",
		LiveURL:     "https://iamsaief-reactjs.vercel.app/projects/chrono-craft",
		Image:       "/static/projects-chrono-craft-min.png",
	},
	{
		Name:        "Elite Shop",
		Year:        "2025",
		Status:      StatusLive,
		Description: "A sleek e-commerce application with comprehensive shopping cart functionality, built with React, Context API + useReducer for seamless state management and a responsive UI powered by TailwindCSS",
		TechStack:   []string{"React", "Tailwind CSS", "Context API + Reducer"},
		GitHubURL:   "https://github.com/iamsaief/reactjs/tree/main/src/projects/elite-shop",
		LiveURL:     "https://iamsaief-reactjs.vercel.app/projects/elite-shop",
		Image:       "/static/projects-elite-shop-min.png",
	},
	{
		Name:        "Resume Enhancer",
		Year:        "2025",
		Status:      StatusInProgress,
		Description: "An intelligent resume enhancement tool that uses AI to improve, optimize, and format resumes for modern job markets and ATS systems.",
		TechStack:   []string{"React", "Redux-Toolkit", "Tailwind CSS"},
		GitHubURL:   "https://github.com/iamsaief/reactjs/tree/main/src/projects/resume-enhancer",
		LiveURL:     "https://iamsaief-reactjs.vercel.app/projects/resume-enhancer",
		Image:       "/static/projects-resume-enhancer-min.png",
	},
}

// Flat list used for badges.
var skills = []string{
	"React",
	"Next.js",
	"TypeScript/JavaScript",
	"WordPress",
	"Tailwind CSS",
	"REST APIs",
	"Git",
	"Accessibility",
	"Performance",
	"Testing",
	"CI/CD",
	"Figma",
}

var skillGroups = []SkillGroup{
	{Category: CategoryFrontend, Skills: []string{"React", "Next.js", "TypeScript", "JavaScript", "Tailwind CSS", "CSS", "HTML"}},
	{Category: CategoryBackend, Skills: []string{"Node.js", "GraphQL", "REST APIs", "Express.js"}},
	{Category: CategoryDatabase, Skills: []string{"MongoDB", "PostgreSQL", "Prisma", "Supabase"}},
	{Category: CategoryTools, Skills: []string{"Git", "Docker", "CI/CD", "Testing", "Performance"}},
	{Category: CategoryDesign, Skills: []string{"Figma", "Accessibility", "UI/UX", "Responsive Design"}},
}

package content

// Default returns the built-in portfolio shown when no content file is given.
func Default() Content {
	return Content{
		Profile: Profile{
			Name:         "Rohan",
			Title:        "Software Engineer",
			Tagline:      "I design and build reliable, scalable software — with a bias for automation, clarity, and impact.",
			Location:     "India (IST)",
			Email:        "rohan@example.com",
			ResumeURL:    "https://example.com/Rohan_Jaiswal_DevOps_Resume.pdf",
			Availability: "Available for select projects",
			Social: Social{
				GitHub:   "https://github.com/your-github",
				LinkedIn: "https://linkedin.com/in/your-linkedin",
			},
			Highlights: []string{"Reliable", "Scalable", "Automated", "Observable"},
			Building: Building{
				Headline: "Currently building",
				Detail:   "Performance, tooling, and AI automation.",
			},
		},
		Skills: []SkillGroup{
			{Group: "Core", Items: []string{"TypeScript", "Python", "Go", "Java"}},
			{Group: "Web / App", Items: []string{"React", "Next.js", "Node.js", "Vite"}},
			{Group: "Cloud / DevOps", Items: []string{"AWS", "Docker", "Kubernetes (EKS)", "Terraform"}},
			{Group: "Data / AI", Items: []string{"PostgreSQL", "Redis", "Airflow", "LangChain", "OpenAI API"}},
			{Group: "Practices", Items: []string{"TDD", "Clean Architecture", "CI/CD", "Observability"}},
		},
		Projects: []Project{
			{
				Name:        "Smart Deploy",
				Description: "CLI + GitHub Actions to automate blue/green deployments on AWS with zero-downtime rollbacks.",
				Tech:        []string{"TypeScript", "AWS", "GitHub Actions"},
				Link:        "https://example.com/project",
				Repo:        "https://github.com/your-github/smart-deploy",
			},
			{
				Name:        "DocSense",
				Description: "RAG-powered document Q&A with embeddings, chunking, and streaming responses.",
				Tech:        []string{"Python", "FastAPI", "OpenAI", "Postgres"},
				Link:        "https://example.com/project",
				Repo:        "https://github.com/your-github/docsense",
			},
			{
				Name:        "CostRadar",
				Description: "FinOps dashboard for AWS cost anomalies with alerting and auto-tagging.",
				Tech:        []string{"Next.js", "Terraform", "AWS"},
				Link:        "https://example.com/project",
				Repo:        "https://github.com/your-github/costradar",
			},
		},
		Experience: []ExperienceEntry{
			{
				Role:    "Software Engineer",
				Company: "Acme AI",
				Period:  "2023 — Present",
				Bullets: []string{
					"Built event-driven data pipelines (3x throughput, 40% lower costs).",
					"Shipped auth & billing for B2B SaaS (MRR +₹10L).",
					"Led migration to IaC and preview environments.",
				},
			},
			{
				Role:    "Freelance Engineer",
				Company: "Multiple startups",
				Period:  "2020 — 2023",
				Bullets: []string{
					"Delivered 15+ projects in web, automation, and analytics.",
					"Introduced CI/CD and testing suites to reduce regressions by 60%.",
				},
			},
		},
		Certifications: []string{
			"Microsoft: Azure Developer Associate (AZ-204)",
			"Microsoft: DevOps Engineer Expert (AZ-400)",
			"Google Cloud: Associate Cloud Engineer (ACE)",
			"GitHub Actions (GH-200)",
			"GitHub Copilot (GH-300)",
			"Vertex AI: Generative AI Explorer",
			"Kubernetes in Google Cloud",
			"Google Cloud Operations Suite",
		},
		Impact: []ImpactMetric{
			{Label: "Cost ↓", Value: "25%"},
			{Label: "Components", Value: "300+"},
			{Label: "Uptime", Value: "99.9%"},
			{Label: "Cycle Time", Value: "20% faster"},
		},
	}
}

package i18n

var englishMessages = map[string]string{
	"lang.en":    "English",
	"lang.pt_br": "Português (Brasil)",
	"lang.label": "Language",

	"meta.description": "Creative front-end developer specializing in React, TypeScript, and modern web technologies.",
	"title.page":       "%s | RK Prasad",
	"title.site":       "RK Prasad - Front-End Developer",

	"nav.home":        "Home",
	"nav.about":       "About",
	"nav.projects":    "Projects",
	"nav.contact":     "Contact",
	"nav.single_page": "Single Page",
	"nav.toggle":      "Toggle navigation",
	"nav.skip":        "Skip to content",

	"loader.message":  "Loading portfolio...",
	"loader.noscript": "This page refreshes automatically once the site is ready.",

	"hero.greeting":     "Hi, I'm",
	"hero.view_work":    "View My Work",
	"hero.get_in_touch": "Get In Touch",

	"skills.heading":   "Skills & Expertise",
	"skills.subtitle":  "Here are the technologies and tools I use to bring ideas to life and create exceptional digital experiences",
	"skills.technical": "Technical Skills",
	"skills.tools":     "Tools & Software",
	"skills.learning":  "Currently Learning",

	"about.heading":      "About Me",
	"about.values":       "What I Bring",
	"about.achievements": "Highlights",
	"about.experience":   "%d+ years of front-end experience",

	"projects.heading":    "Featured Projects",
	"projects.subtitle":   "Here are some of my recent projects that showcase my skills and passion for creating exceptional web experiences",
	"projects.featured":   "Featured",
	"projects.other":      "Other Projects",
	"projects.filter":     "Filter projects by category",
	"projects.live":       "Live Demo",
	"projects.code":       "Code",
	"projects.prev":       "Previous project",
	"projects.next":       "Next project",
	"projects.position":   "Project %d of %d",
	"projects.empty":      "No projects in this category yet.",
	"projects.no_feature": "No featured projects available",

	"contact.heading":           "Get In Touch",
	"contact.subtitle":          "I'm always excited to discuss new opportunities, interesting projects, or just have a great conversation about technology and innovation.",
	"contact.connect":           "Let's Connect",
	"contact.connect_body":      "Whether you have a project in mind, want to collaborate, or just want to say hello, I'd love to hear from you. Let's create something amazing together!",
	"contact.follow":            "Follow Me",
	"contact.quick_response":    "Quick Response",
	"contact.quick_body":        "I typically respond to emails within 24 hours. For urgent matters, feel free to call me directly.",
	"contact.form.name":         "Full Name",
	"contact.form.email":        "Email Address",
	"contact.form.subject":      "Subject",
	"contact.form.message":      "Message",
	"contact.form.budget":       "Project Budget",
	"contact.form.timeline":     "Timeline",
	"contact.form.optional":     "(optional)",
	"contact.form.name_hint":    "Your full name",
	"contact.form.email_hint":   "your.email@example.com",
	"contact.form.subject_hint": "What's this about?",
	"contact.form.message_hint": "Tell me about your project, goals, and how I can help you achieve them...",
	"contact.form.budget_hint":  "Select budget range",
	"contact.form.time_hint":    "Select timeline",
	"contact.form.submit":       "Send Message",
	"contact.form.sending":      "Sending...",
	"contact.counter":           "%s/%s characters",

	"contact.budget.under-5k":        "Under $5,000",
	"contact.budget.5k-10k":          "$5,000 - $10,000",
	"contact.budget.10k-25k":         "$10,000 - $25,000",
	"contact.budget.25k-50k":         "$25,000 - $50,000",
	"contact.budget.50k-plus":        "$50,000+",
	"contact.timeline.asap":          "ASAP",
	"contact.timeline.1-2-weeks":     "1-2 weeks",
	"contact.timeline.1-month":       "1 month",
	"contact.timeline.2-3-months":    "2-3 months",
	"contact.timeline.3-plus-months": "3+ months",

	"contact.validation.name_required":    "Full name is required",
	"contact.validation.name_min":         "Name must be at least 2 characters",
	"contact.validation.name_max":         "Name must be less than 50 characters",
	"contact.validation.email_required":   "Email is required",
	"contact.validation.email_invalid":    "Invalid email address",
	"contact.validation.email_max":        "Email must be less than 100 characters",
	"contact.validation.subject_required": "Subject is required",
	"contact.validation.subject_min":      "Subject must be at least 3 characters",
	"contact.validation.subject_max":      "Subject must be less than 100 characters",
	"contact.validation.message_required": "Message is required",
	"contact.validation.message_min":      "Message must be at least 10 characters",
	"contact.validation.message_max":      "Message must be less than 1000 characters",
	"contact.validation.budget_invalid":   "Select a budget from the list",
	"contact.validation.timeline_invalid": "Select a timeline from the list",

	"contact.success.title":   "Message Sent Successfully! 🎉",
	"contact.success.message": "Thank you for reaching out! I'll review your message and get back to you within 24 hours.",
	"contact.error.title":     "Oops! Something went wrong 😔",
	"contact.error.message":   "Unable to send your message right now. Please try again later or reach out to me directly via email.",
	"contact.error.origin":    "Please send the form from this site.",
	"contact.error.rate":      "Too many messages in a short time. Please wait a minute and try again.",
	"contact.error.invalid":   "Please fix the highlighted fields.",

	"notification.close": "Dismiss notification",
	"scroll.top":         "Back to top",
	"single.quick_nav":   "Jump to section",

	"footer.tagline":      "Front-End Developer passionate about creating exceptional digital experiences with modern technologies and innovative solutions.",
	"footer.quick_links":  "Quick Links",
	"footer.get_in_touch": "Get In Touch",
	"footer.rights":       "© %s %s. All rights reserved.",

	"error.not_found.title":   "Page not found",
	"error.not_found.message": "The page you are looking for does not exist.",
	"error.server.title":      "Something went wrong",
	"error.server.message":    "An unexpected error occurred. Please try again.",
	"error.back_home":         "Back to home",
}

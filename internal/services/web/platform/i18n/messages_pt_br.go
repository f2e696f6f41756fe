package i18n

var portugueseMessages = map[string]string{
	"lang.en":    "English",
	"lang.pt_br": "Português (Brasil)",
	"lang.label": "Idioma",

	"meta.description": "Desenvolvedor front-end criativo especializado em React, TypeScript e tecnologias web modernas.",
	"title.page":       "%s | RK Prasad",
	"title.site":       "RK Prasad - Desenvolvedor Front-End",

	"nav.home":        "Início",
	"nav.about":       "Sobre",
	"nav.projects":    "Projetos",
	"nav.contact":     "Contato",
	"nav.single_page": "Página Única",
	"nav.toggle":      "Alternar navegação",
	"nav.skip":        "Pular para o conteúdo",

	"loader.message":  "Carregando portfólio...",
	"loader.noscript": "Esta página atualiza automaticamente quando o site estiver pronto.",

	"hero.greeting":     "Olá, eu sou",
	"hero.view_work":    "Ver Meus Trabalhos",
	"hero.get_in_touch": "Entre em Contato",

	"skills.heading":   "Habilidades e Especialidades",
	"skills.subtitle":  "Estas são as tecnologias e ferramentas que uso para dar vida a ideias e criar experiências digitais excepcionais",
	"skills.technical": "Habilidades Técnicas",
	"skills.tools":     "Ferramentas e Software",
	"skills.learning":  "Aprendendo Agora",

	"about.heading":      "Sobre Mim",
	"about.values":       "O Que Eu Ofereço",
	"about.achievements": "Destaques",
	"about.experience":   "%d+ anos de experiência em front-end",

	"projects.heading":    "Projetos em Destaque",
	"projects.subtitle":   "Alguns dos meus projetos recentes que mostram minhas habilidades e paixão por criar experiências web excepcionais",
	"projects.featured":   "Destaque",
	"projects.other":      "Outros Projetos",
	"projects.filter":     "Filtrar projetos por categoria",
	"projects.live":       "Ver Online",
	"projects.code":       "Código",
	"projects.prev":       "Projeto anterior",
	"projects.next":       "Próximo projeto",
	"projects.position":   "Projeto %d de %d",
	"projects.empty":      "Ainda não há projetos nesta categoria.",
	"projects.no_feature": "Nenhum projeto em destaque disponível",

	"contact.heading":           "Entre em Contato",
	"contact.subtitle":          "Estou sempre animado para discutir novas oportunidades, projetos interessantes ou simplesmente conversar sobre tecnologia e inovação.",
	"contact.connect":           "Vamos Conversar",
	"contact.connect_body":      "Seja para um projeto, uma colaboração ou apenas um olá, adoraria ouvir você. Vamos criar algo incrível juntos!",
	"contact.follow":            "Me Siga",
	"contact.quick_response":    "Resposta Rápida",
	"contact.quick_body":        "Costumo responder e-mails em até 24 horas. Para assuntos urgentes, fique à vontade para ligar.",
	"contact.form.name":         "Nome Completo",
	"contact.form.email":        "Endereço de E-mail",
	"contact.form.subject":      "Assunto",
	"contact.form.message":      "Mensagem",
	"contact.form.budget":       "Orçamento do Projeto",
	"contact.form.timeline":     "Prazo",
	"contact.form.optional":     "(opcional)",
	"contact.form.name_hint":    "Seu nome completo",
	"contact.form.email_hint":   "seu.email@exemplo.com",
	"contact.form.subject_hint": "Sobre o que é?",
	"contact.form.message_hint": "Conte sobre seu projeto, seus objetivos e como posso ajudar você a alcançá-los...",
	"contact.form.budget_hint":  "Selecione a faixa de orçamento",
	"contact.form.time_hint":    "Selecione o prazo",
	"contact.form.submit":       "Enviar Mensagem",
	"contact.form.sending":      "Enviando...",
	"contact.counter":           "%s/%s caracteres",

	"contact.budget.under-5k":        "Abaixo de US$ 5.000",
	"contact.budget.5k-10k":          "US$ 5.000 - US$ 10.000",
	"contact.budget.10k-25k":         "US$ 10.000 - US$ 25.000",
	"contact.budget.25k-50k":         "US$ 25.000 - US$ 50.000",
	"contact.budget.50k-plus":        "US$ 50.000+",
	"contact.timeline.asap":          "O quanto antes",
	"contact.timeline.1-2-weeks":     "1-2 semanas",
	"contact.timeline.1-month":       "1 mês",
	"contact.timeline.2-3-months":    "2-3 meses",
	"contact.timeline.3-plus-months": "3+ meses",

	"contact.validation.name_required":    "O nome completo é obrigatório",
	"contact.validation.name_min":         "O nome deve ter pelo menos 2 caracteres",
	"contact.validation.name_max":         "O nome deve ter menos de 50 caracteres",
	"contact.validation.email_required":   "O e-mail é obrigatório",
	"contact.validation.email_invalid":    "Endereço de e-mail inválido",
	"contact.validation.email_max":        "O e-mail deve ter menos de 100 caracteres",
	"contact.validation.subject_required": "O assunto é obrigatório",
	"contact.validation.subject_min":      "O assunto deve ter pelo menos 3 caracteres",
	"contact.validation.subject_max":      "O assunto deve ter menos de 100 caracteres",
	"contact.validation.message_required": "A mensagem é obrigatória",
	"contact.validation.message_min":      "A mensagem deve ter pelo menos 10 caracteres",
	"contact.validation.message_max":      "A mensagem deve ter menos de 1000 caracteres",
	"contact.validation.budget_invalid":   "Selecione um orçamento da lista",
	"contact.validation.timeline_invalid": "Selecione um prazo da lista",

	"contact.success.title":   "Mensagem Enviada com Sucesso! 🎉",
	"contact.success.message": "Obrigado pelo contato! Vou ler sua mensagem e responder em até 24 horas.",
	"contact.error.title":     "Ops! Algo deu errado 😔",
	"contact.error.message":   "Não foi possível enviar sua mensagem agora. Tente novamente mais tarde ou fale comigo diretamente por e-mail.",
	"contact.error.origin":    "Envie o formulário a partir deste site.",
	"contact.error.rate":      "Muitas mensagens em pouco tempo. Aguarde um minuto e tente novamente.",
	"contact.error.invalid":   "Corrija os campos destacados.",

	"notification.close": "Fechar notificação",
	"scroll.top":         "Voltar ao topo",
	"single.quick_nav":   "Ir para a seção",

	"footer.tagline":      "Desenvolvedor Front-End apaixonado por criar experiências digitais excepcionais com tecnologias modernas e soluções inovadoras.",
	"footer.quick_links":  "Links Rápidos",
	"footer.get_in_touch": "Entre em Contato",
	"footer.rights":       "© %s %s. Todos os direitos reservados.",

	"error.not_found.title":   "Página não encontrada",
	"error.not_found.message": "A página que você procura não existe.",
	"error.server.title":      "Algo deu errado",
	"error.server.message":    "Ocorreu um erro inesperado. Tente novamente.",
	"error.back_home":         "Voltar ao início",
}

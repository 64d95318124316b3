package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// translations maps message keys to per-language interface text. Missing
// pt-BR entries fall back to the key, which the tests guard against.
var translations = map[string]map[string]string{
	"en": {
		"title.dashboard":    "Dashboard",
		"title.contacts":     "Contacts",
		"title.interactions": "Interactions",
		"title.followups":    "Follow-ups",
		"title.sources":      "Knowledge Sources",
		"title.entities":     "Knowledge Entities",
		"title.ingestion":    "Ingestion Queue",
		"title.runs":         "Analysis Runs",
		"title.feedback":     "Feedback",
		"title.login":        "Sign in",
		"title.unauthorized": "Not authorized",

		"column.name":      "Name",
		"column.email":     "Email",
		"column.phone":     "Phone",
		"column.company":   "Company",
		"column.status":    "Status",
		"column.created":   "Created",
		"column.contact":   "Contact",
		"column.channel":   "Channel",
		"column.summary":   "Summary",
		"column.sentiment": "Sentiment",
		"column.occurred":  "Occurred",
		"column.note":      "Note",
		"column.due":       "Due",
		"column.title":     "Title",
		"column.kind":      "Kind",
		"column.url":       "URL",
		"column.added":     "Added",
		"column.category":  "Category",
		"column.source":    "Source",
		"column.mentions":  "Mentions",
		"column.updated":   "Updated",
		"column.file":      "File",
		"column.mime":      "Type",
		"column.submitted": "Submitted",
		"column.processed": "Processed",
		"column.items":     "Items",
		"column.triggered": "Triggered by",
		"column.started":   "Started",
		"column.finished":  "Finished",
		"column.subject":   "Subject",
		"column.verdict":   "Verdict",
		"column.comment":   "Comment",
		"column.author":    "Author",

		"filter.status":   "Status",
		"filter.channel":  "Channel",
		"filter.kind":     "Kind",
		"filter.category": "Category",
		"filter.verdict":  "Verdict",
		"filter.all":      "All",

		"list.search_placeholder": "Search…",
		"list.search":             "Search",
		"list.clear_filters":      "Clear filters",
		"list.empty":              "No records",

		"login.heading":  "Sign in to Relaydesk Ops",
		"login.email":    "Email",
		"login.password": "Password",
		"login.submit":   "Sign in",

		"error.unauthorized":  "User not authorized",
		"error.back_to_login": "Back to sign in",
		"error.not_found":     "Page not found",
		"error.internal":      "Something went wrong",

		"dashboard.welcome": "Operations overview",
	},
	"pt-BR": {
		"title.dashboard":    "Painel",
		"title.contacts":     "Contatos",
		"title.interactions": "Interações",
		"title.followups":    "Pendências",
		"title.sources":      "Fontes de Conhecimento",
		"title.entities":     "Entidades de Conhecimento",
		"title.ingestion":    "Fila de Ingestão",
		"title.runs":         "Execuções de Análise",
		"title.feedback":     "Feedback",
		"title.login":        "Entrar",
		"title.unauthorized": "Não autorizado",

		"column.name":      "Nome",
		"column.email":     "Email",
		"column.phone":     "Telefone",
		"column.company":   "Empresa",
		"column.status":    "Status",
		"column.created":   "Criado",
		"column.contact":   "Contato",
		"column.channel":   "Canal",
		"column.summary":   "Resumo",
		"column.sentiment": "Sentimento",
		"column.occurred":  "Ocorrido",
		"column.note":      "Nota",
		"column.due":       "Prazo",
		"column.title":     "Título",
		"column.kind":      "Tipo",
		"column.url":       "URL",
		"column.added":     "Adicionado",
		"column.category":  "Categoria",
		"column.source":    "Fonte",
		"column.mentions":  "Menções",
		"column.updated":   "Atualizado",
		"column.file":      "Arquivo",
		"column.mime":      "Tipo",
		"column.submitted": "Enviado",
		"column.processed": "Processado",
		"column.items":     "Itens",
		"column.triggered": "Iniciado por",
		"column.started":   "Início",
		"column.finished":  "Fim",
		"column.subject":   "Assunto",
		"column.verdict":   "Veredito",
		"column.comment":   "Comentário",
		"column.author":    "Autor",

		"filter.status":   "Status",
		"filter.channel":  "Canal",
		"filter.kind":     "Tipo",
		"filter.category": "Categoria",
		"filter.verdict":  "Veredito",
		"filter.all":      "Todos",

		"list.search_placeholder": "Buscar…",
		"list.search":             "Buscar",
		"list.clear_filters":      "Limpar filtros",
		"list.empty":              "Nenhum registro",

		"login.heading":  "Entrar no Relaydesk Ops",
		"login.email":    "Email",
		"login.password": "Senha",
		"login.submit":   "Entrar",

		"error.unauthorized":  "Usuário não autorizado",
		"error.back_to_login": "Voltar para o login",
		"error.not_found":     "Página não encontrada",
		"error.internal":      "Algo deu errado",

		"dashboard.welcome": "Visão geral de operações",
	},
}

func init() {
	for lang, entries := range translations {
		tag := language.MustParse(lang)
		for key, text := range entries {
			_ = message.SetString(tag, key, text)
		}
	}
}

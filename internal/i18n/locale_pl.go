package i18n

var localePL = locale{
	// Kontakty
	"fluentcrm_list_contacts": {
		Description: "Pobiera listę wszystkich kontaktów z FluentCRM",
		Params: map[string]string{
			"page":     "Numer strony (default: 1)",
			"per_page": "Ilość rekordów na stronę (default: 10)",
			"search":   "Szukaj po emailu/imieniu",
		},
	},
	"fluentcrm_get_contact": {
		Description: "Pobiera szczegóły konkretnego kontaktu",
		Params:      map[string]string{"subscriberId": "ID kontaktu"},
	},
	"fluentcrm_find_contact_by_email": {
		Description: "Wyszukuje kontakt po adresie email",
		Params:      map[string]string{"email": "Adres email"},
	},
	"fluentcrm_create_contact": {
		Description: "Tworzy nowy kontakt w FluentCRM",
		Params: map[string]string{
			"email":          "Email kontaktu",
			"first_name":     "Imię",
			"last_name":      "Nazwisko",
			"phone":          "Numer telefonu",
			"address_line_1": "Adres",
			"city":           "Miasto",
			"state":          "Województwo/region",
			"country":        "Kraj",
			"postal_code":    "Kod pocztowy",
		},
	},
	"fluentcrm_update_contact": {
		Description: "Aktualizuje dane kontaktu",
		Params: map[string]string{
			"subscriberId": "ID kontaktu",
			"email":        "Nowy adres email",
			"first_name":   "Imię",
			"last_name":    "Nazwisko",
			"phone":        "Numer telefonu",
		},
	},
	"fluentcrm_delete_contact": {
		Description: "Usuwa kontakt z FluentCRM",
		Params:      map[string]string{"subscriberId": "ID kontaktu do usunięcia"},
	},

	// Tagi
	"fluentcrm_list_tags": {
		Description: "Pobiera wszystkie tagi z FluentCRM",
		Params:      map[string]string{"page": "Numer strony", "search": "Szukaj tagu"},
	},
	"fluentcrm_get_tag": {
		Description: "Pobiera szczegóły konkretnego tagu",
		Params:      map[string]string{"tagId": "ID tagu"},
	},
	"fluentcrm_create_tag": {
		Description: "Tworzy nowy tag w FluentCRM",
		Params: map[string]string{
			"title":       `Nazwa tagu (np. "AW-progress-75")`,
			"slug":        `Slug tagu (np. "aw-progress-75")`,
			"description": "Opis tagu",
		},
	},
	"fluentcrm_update_tag": {
		Description: "Aktualizuje istniejący tag",
		Params: map[string]string{
			"tagId":       "ID tagu",
			"title":       "Nazwa tagu",
			"slug":        "Slug tagu",
			"description": "Opis tagu",
		},
	},
	"fluentcrm_delete_tag": {
		Description: "Usuwa tag z FluentCRM",
		Params:      map[string]string{"tagId": "ID tagu"},
	},
	"fluentcrm_attach_tag_to_contact": {
		Description: "Przypisuje tag do kontaktu",
		Params:      map[string]string{"subscriberId": "ID kontaktu", "tagIds": "Lista ID tagów"},
	},
	"fluentcrm_detach_tag_from_contact": {
		Description: "Usuwa tag z kontaktu",
		Params:      map[string]string{"subscriberId": "ID kontaktu", "tagIds": "Lista ID tagów"},
	},

	// Listy
	"fluentcrm_list_lists": {Description: "Pobiera wszystkie listy z FluentCRM"},
	"fluentcrm_get_list": {
		Description: "Pobiera szczegóły konkretnej listy",
		Params:      map[string]string{"listId": "ID listy"},
	},
	"fluentcrm_create_list": {
		Description: "Tworzy nową listę w FluentCRM",
		Params:      map[string]string{"title": "Nazwa listy", "slug": "Slug listy", "description": "Opis listy"},
	},
	"fluentcrm_update_list": {
		Description: "Aktualizuje istniejącą listę",
		Params: map[string]string{
			"listId":      "ID listy",
			"title":       "Nazwa listy",
			"slug":        "Slug listy",
			"description": "Opis listy",
		},
	},
	"fluentcrm_delete_list": {
		Description: "Usuwa listę z FluentCRM",
		Params:      map[string]string{"listId": "ID listy"},
	},
	"fluentcrm_attach_contact_to_list": {
		Description: "Przypisuje kontakt do listy",
		Params:      map[string]string{"subscriberId": "ID kontaktu", "listIds": "Lista ID list"},
	},
	"fluentcrm_detach_contact_from_list": {
		Description: "Usuwa kontakt z listy",
		Params:      map[string]string{"subscriberId": "ID kontaktu", "listIds": "Lista ID list"},
	},

	// Kampanie
	"fluentcrm_list_campaigns": {
		Description: "Pobiera listę kampanii email",
		Params:      map[string]string{"page": "Numer strony", "search": "Szukaj kampanii"},
	},
	"fluentcrm_get_campaign": {
		Description: "Pobiera szczegóły konkretnej kampanii",
		Params:      map[string]string{"campaignId": "ID kampanii"},
	},
	"fluentcrm_create_campaign": {
		Description: "Tworzy nową kampanię email",
		Params: map[string]string{
			"title":            "Tytuł kampanii",
			"subject":          "Temat emaila",
			"template_id":      "ID szablonu do zaimportowania jako treść",
			"recipient_list":   "Tablica ID list odbiorców",
			"email_pre_header": "Tekst podglądu wyświetlany po temacie w skrzynkach",
			"from_name":        "Niestandardowa nazwa nadawcy",
			"from_email":       "Niestandardowy adres email nadawcy",
			"reply_to_name":    "Nazwa dla odpowiedzi",
			"reply_to_email":   "Adres email dla odpowiedzi",
			"utm_source":       "Źródło UTM (np. newsletter) — WYMAGANE gdy używane jest śledzenie UTM",
			"utm_medium":       "Medium UTM (np. email) — WYMAGANE gdy używane jest śledzenie UTM",
			"utm_campaign":     "Nazwa kampanii UTM — WYMAGANE gdy używane jest śledzenie UTM",
			"utm_term":         "Termin UTM (opcjonalne)",
			"utm_content":      "Zawartość UTM (opcjonalne)",
			"tags":             "Tablica ID tagów jako odbiorcy kampanii",
			"contact_emails":   "Tablica konkretnych adresów email odbiorców",
			"scheduled_at":     `Zaplanuj wysyłkę: "YYYY-MM-DD HH:mm:ss". Status kampanii zmienia się na "scheduled".`,
		},
	},
	"fluentcrm_update_campaign": {
		Description: "Aktualizuje kampanię przed wysyłką",
		Params: map[string]string{
			"campaignId": "ID kampanii",
			"title":      "Tytuł kampanii",
			"subject":    "Temat emaila",
		},
	},
	"fluentcrm_pause_campaign": {
		Description: "Wstrzymuje kampanię",
		Params:      map[string]string{"campaignId": "ID kampanii"},
	},
	"fluentcrm_resume_campaign": {
		Description: "Wznawia kampanię",
		Params:      map[string]string{"campaignId": "ID kampanii"},
	},
	"fluentcrm_delete_campaign": {
		Description: "Usuwa kampanię",
		Params:      map[string]string{"campaignId": "ID kampanii"},
	},

	// Szablony email
	"fluentcrm_list_email_templates": {Description: "Pobiera szablony email"},
	"fluentcrm_get_email_template": {
		Description: "Pobiera konkretny szablon email",
		Params:      map[string]string{"templateId": "ID szablonu"},
	},
	"fluentcrm_create_email_template": {
		Description: "Tworzy nowy szablon email",
		Params:      map[string]string{"title": "Nazwa szablonu", "subject": "Temat", "body": "Treść HTML"},
	},
	"fluentcrm_update_email_template": {
		Description: "Aktualizuje istniejący szablon email",
		Params: map[string]string{
			"templateId": "ID szablonu",
			"title":      "Nazwa szablonu",
			"subject":    "Temat",
			"body":       "Treść HTML",
		},
	},
	"fluentcrm_delete_email_template": {
		Description: "Usuwa szablon email",
		Params:      map[string]string{"templateId": "ID szablonu"},
	},

	// Automatyzacje
	"fluentcrm_list_automations": {
		Description: "Pobiera automatyzacje (funnels)",
		Params:      map[string]string{"page": "Numer strony", "search": "Szukaj automatyzacji"},
	},
	"fluentcrm_get_automation": {
		Description: "Pobiera konkretną automatyzację (funnel) po ID",
		Params:      map[string]string{"funnelId": "ID funnela"},
	},
	"fluentcrm_create_automation": {
		Description: "Tworzy nową automatyzację",
		Params: map[string]string{
			"title":       "Nazwa automatyzacji",
			"description": "Opis automatyzacji",
			"trigger":     "Typ wyzwalacza",
		},
	},
	"fluentcrm_update_automation": {
		Description: "Aktualizuje nazwę lub opis automatyzacji",
		Params: map[string]string{
			"funnelId":    "ID funnela",
			"title":       "Nazwa automatyzacji",
			"description": "Opis automatyzacji",
		},
	},
	"fluentcrm_delete_automation": {
		Description: "Usuwa funnel i zatrzymuje wszystkie aktywne sekwencje",
		Params:      map[string]string{"funnelId": "ID funnela do usunięcia"},
	},
	"fluentcrm_update_funnel_status": {
		Description: "Aktualizuje status funnela (published, draft lub paused)",
		Params: map[string]string{
			"funnelId": "ID funnela",
			"status":   "Nowy status: published, draft lub paused",
		},
	},
	"fluentcrm_duplicate_funnel": {
		Description: "Tworzy kopię istniejącego funnela",
		Params:      map[string]string{"funnelId": "ID funnela do skopiowania"},
	},
	"fluentcrm_get_funnel_subscribers": {
		Description: "Pobiera subskrybentów zapisanych do funnela",
		Params: map[string]string{
			"funnelId": "ID funnela",
			"status":   "Filtruj po statusie: active, completed lub cancelled",
		},
	},
	"fluentcrm_update_funnel_subscriber_status": {
		Description: "Aktualizuje status kontaktu zapisanego w lejku (np. active, paused, cancelled)",
		Params: map[string]string{
			"funnelId":     "ID lejka",
			"subscriberId": "ID subskrybenta (kontaktu)",
			"status":       "Nowy status: active, paused lub cancelled",
		},
	},
	"fluentcrm_remove_funnel_subscriber": {
		Description: "Usuwa jeden lub więcej kontaktów z funnela",
		Params: map[string]string{
			"funnelId":       "ID funnela",
			"subscriber_ids": "Tablica ID subskrybentów do usunięcia",
		},
	},
	"fluentcrm_add_subscribers_to_funnel": {
		Description: "Dodaje jeden lub więcej kontaktów do funnela (automatyzacji). Wymaga FluentCRM Pro.",
		Params: map[string]string{
			"funnelId":       "ID funnela, do którego zostaną zapisani kontakci",
			"subscriber_ids": "Tablica ID kontaktów do dodania do funnela",
		},
	},
	"fluentcrm_get_funnel_report": {
		Description: "Pobiera raport wydajności funnela",
		Params:      map[string]string{"funnelId": "ID funnela"},
	},
	"fluentcrm_get_funnel_sequences": {
		Description: "Pobiera wszystkie kroki (sekwencje/akcje) w automatyzacji funnela. Zwraca każdy krok z typem, nazwą akcji, ustawieniami i gałęziami warunkowymi.",
		Params:      map[string]string{"funnelId": "ID funnela"},
	},

	// Webhooks
	"fluentcrm_list_webhooks": {Description: "Pobiera webhooks"},
	"fluentcrm_create_webhook": {
		Description: "Tworzy nowy webhook",
		Params: map[string]string{
			"name":   "Nazwa webhook",
			"url":    "URL webhook",
			"status": `Status webhooka (domyślnie: "pending")`,
			"tags":   "ID tagów przypisywanych kontaktom utworzonym przez webhook",
			"lists":  "ID list przypisywanych kontaktom utworzonym przez webhook",
		},
	},
	"fluentcrm_update_webhook": {
		Description: "Aktualizuje istniejący webhook",
		Params: map[string]string{
			"webhookId": "ID webhooka",
			"name":      "Nazwa webhook",
			"url":       "URL webhook",
			"status":    "Status webhooka",
			"tags":      "ID tagów przypisywanych kontaktom utworzonym przez webhook",
			"lists":     "ID list przypisywanych kontaktom utworzonym przez webhook",
		},
	},
	"fluentcrm_delete_webhook": {
		Description: "Usuwa webhook",
		Params:      map[string]string{"webhookId": "ID webhooka"},
	},

	// Pola niestandardowe i raporty
	"fluentcrm_custom_fields":   {Description: "Pobiera pola niestandardowe"},
	"fluentcrm_dashboard_stats": {Description: "Pobiera statystyki dashboarda"},
	"fluentcrm_subscribers_growth_rate": {
		Description: "Pobiera raport tempa wzrostu liczby subskrybentów",
		Params: map[string]string{
			"from": "Data początkowa (YYYY-MM-DD)",
			"to":   "Data końcowa (YYYY-MM-DD)",
		},
	},

	// Smart Links
	"fluentcrm_list_smart_links": {
		Description: "Pobiera listę Smart Links z FluentCRM (może nie być dostępne w obecnej wersji)",
		Params:      map[string]string{"page": "Numer strony", "search": "Szukaj Smart Link"},
	},
	"fluentcrm_get_smart_link": {
		Description: "Pobiera szczegóły konkretnego Smart Link",
		Params:      map[string]string{"smartLinkId": "ID Smart Link"},
	},
	"fluentcrm_create_smart_link": {
		Description: "Tworzy nowy Smart Link (może nie być dostępne w obecnej wersji)",
		Params: map[string]string{
			"title":        `Nazwa Smart Link (np. "AW-Link-Webinar-Mail")`,
			"slug":         `Slug (np. "aw-link-webinar-mail")`,
			"target_url":   "Docelowy URL",
			"apply_tags":   "ID tagów do dodania po kliknięciu",
			"apply_lists":  "ID list do dodania po kliknięciu",
			"remove_tags":  "ID tagów do usunięcia po kliknięciu",
			"remove_lists": "ID list do usunięcia po kliknięciu",
			"auto_login":   "Czy automatycznie logować użytkownika",
		},
	},
	"fluentcrm_update_smart_link": {
		Description: "Aktualizuje Smart Link (może nie być dostępne w obecnej wersji)",
		Params: map[string]string{
			"smartLinkId":  "ID Smart Link",
			"title":        "Nazwa Smart Link",
			"slug":         "Slug",
			"target_url":   "Docelowy URL",
			"apply_tags":   "ID tagów do dodania po kliknięciu",
			"apply_lists":  "ID list do dodania po kliknięciu",
			"remove_tags":  "ID tagów do usunięcia po kliknięciu",
			"remove_lists": "ID list do usunięcia po kliknięciu",
			"auto_login":   "Czy automatycznie logować użytkownika",
		},
	},
	"fluentcrm_delete_smart_link": {
		Description: "Usuwa Smart Link (może nie być dostępne w obecnej wersji)",
		Params:      map[string]string{"smartLinkId": "ID Smart Link do usunięcia"},
	},
	"fluentcrm_generate_smart_link_shortcode": {
		Description: "Generuje shortcode dla Smart Link",
		Params:      map[string]string{"slug": "Slug Smart Link", "linkText": "Tekst linku (opcjonalny)"},
	},
	"fluentcrm_validate_smart_link_data": {
		Description: "Waliduje dane Smart Link przed utworzeniem",
		Params: map[string]string{
			"title":        "Nazwa Smart Link",
			"slug":         "Slug",
			"target_url":   "Docelowy URL",
			"apply_tags":   "ID tagów do dodania po kliknięciu",
			"apply_lists":  "ID list do dodania po kliknięciu",
			"remove_tags":  "ID tagów do usunięcia po kliknięciu",
			"remove_lists": "ID list do usunięcia po kliknięciu",
			"auto_login":   "Czy automatycznie logować użytkownika",
		},
	},
}

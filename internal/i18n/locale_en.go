package i18n

var localeEN = locale{
	// Contacts
	"fluentcrm_list_contacts": {
		Description: "Retrieves a list of all contacts from FluentCRM",
		Params: map[string]string{
			"page":     "Page number (default: 1)",
			"per_page": "Records per page (default: 10)",
			"search":   "Search by email or name",
		},
	},
	"fluentcrm_get_contact": {
		Description: "Retrieves details of a specific contact",
		Params:      map[string]string{"subscriberId": "Contact ID"},
	},
	"fluentcrm_find_contact_by_email": {
		Description: "Finds a contact by email address",
		Params:      map[string]string{"email": "Email address"},
	},
	"fluentcrm_create_contact": {
		Description: "Creates a new contact in FluentCRM",
		Params: map[string]string{
			"email":          "Contact email",
			"first_name":     "First name",
			"last_name":      "Last name",
			"phone":          "Phone number",
			"address_line_1": "Address",
			"city":           "City",
			"state":          "State or region",
			"country":        "Country",
			"postal_code":    "Postal code",
		},
	},
	"fluentcrm_update_contact": {
		Description: "Updates contact details",
		Params: map[string]string{
			"subscriberId": "Contact ID",
			"email":        "New email address",
			"first_name":   "First name",
			"last_name":    "Last name",
			"phone":        "Phone number",
		},
	},
	"fluentcrm_delete_contact": {
		Description: "Deletes a contact from FluentCRM",
		Params:      map[string]string{"subscriberId": "ID of the contact to delete"},
	},

	// Tags
	"fluentcrm_list_tags": {
		Description: "Retrieves all tags from FluentCRM",
		Params:      map[string]string{"page": "Page number", "search": "Search tags"},
	},
	"fluentcrm_get_tag": {
		Description: "Retrieves details of a specific tag",
		Params:      map[string]string{"tagId": "Tag ID"},
	},
	"fluentcrm_create_tag": {
		Description: "Creates a new tag in FluentCRM",
		Params: map[string]string{
			"title":       `Tag name (e.g. "AW-progress-75")`,
			"slug":        `Tag slug (e.g. "aw-progress-75")`,
			"description": "Tag description",
		},
	},
	"fluentcrm_update_tag": {
		Description: "Updates an existing tag",
		Params: map[string]string{
			"tagId":       "Tag ID",
			"title":       "Tag name",
			"slug":        "Tag slug",
			"description": "Tag description",
		},
	},
	"fluentcrm_delete_tag": {
		Description: "Deletes a tag from FluentCRM",
		Params:      map[string]string{"tagId": "Tag ID"},
	},
	"fluentcrm_attach_tag_to_contact": {
		Description: "Attaches a tag to a contact",
		Params:      map[string]string{"subscriberId": "Contact ID", "tagIds": "List of tag IDs"},
	},
	"fluentcrm_detach_tag_from_contact": {
		Description: "Removes a tag from a contact",
		Params:      map[string]string{"subscriberId": "Contact ID", "tagIds": "List of tag IDs"},
	},

	// Lists
	"fluentcrm_list_lists": {Description: "Retrieves all lists from FluentCRM"},
	"fluentcrm_get_list": {
		Description: "Retrieves details of a specific list",
		Params:      map[string]string{"listId": "List ID"},
	},
	"fluentcrm_create_list": {
		Description: "Creates a new list in FluentCRM",
		Params: map[string]string{
			"title":       "List name",
			"slug":        "List slug",
			"description": "List description",
		},
	},
	"fluentcrm_update_list": {
		Description: "Updates an existing list",
		Params: map[string]string{
			"listId":      "List ID",
			"title":       "List name",
			"slug":        "List slug",
			"description": "List description",
		},
	},
	"fluentcrm_delete_list": {
		Description: "Deletes a list from FluentCRM",
		Params:      map[string]string{"listId": "List ID"},
	},
	"fluentcrm_attach_contact_to_list": {
		Description: "Adds a contact to a list",
		Params:      map[string]string{"subscriberId": "Contact ID", "listIds": "List of list IDs"},
	},
	"fluentcrm_detach_contact_from_list": {
		Description: "Removes a contact from a list",
		Params:      map[string]string{"subscriberId": "Contact ID", "listIds": "List of list IDs"},
	},

	// Campaigns
	"fluentcrm_list_campaigns": {
		Description: "Retrieves a list of email campaigns",
		Params:      map[string]string{"page": "Page number", "search": "Search campaigns"},
	},
	"fluentcrm_get_campaign": {
		Description: "Retrieves details of a specific campaign",
		Params:      map[string]string{"campaignId": "Campaign ID"},
	},
	"fluentcrm_create_campaign": {
		Description: "Creates a new email campaign",
		Params: map[string]string{
			"title":            "Campaign title",
			"subject":          "Email subject",
			"template_id":      "Template ID to import as the body",
			"recipient_list":   "Array of recipient list IDs",
			"email_pre_header": "Preview text shown after the subject in inboxes",
			"from_name":        "Custom sender name",
			"from_email":       "Custom sender email address",
			"reply_to_name":    "Reply-to name",
			"reply_to_email":   "Reply-to email address",
			"utm_source":       "UTM source (e.g. newsletter) — REQUIRED when UTM tracking is used",
			"utm_medium":       "UTM medium (e.g. email) — REQUIRED when UTM tracking is used",
			"utm_campaign":     "UTM campaign name — REQUIRED when UTM tracking is used",
			"utm_term":         "UTM term (optional)",
			"utm_content":      "UTM content (optional)",
			"tags":             "Array of tag IDs used as campaign recipients",
			"contact_emails":   "Array of specific recipient email addresses",
			"scheduled_at":     `Schedule delivery: "YYYY-MM-DD HH:mm:ss". Campaign status changes to "scheduled".`,
		},
	},
	"fluentcrm_update_campaign": {
		Description: "Updates a campaign before it is sent",
		Params: map[string]string{
			"campaignId": "Campaign ID",
			"title":      "Campaign title",
			"subject":    "Email subject",
		},
	},
	"fluentcrm_pause_campaign": {
		Description: "Pauses a campaign",
		Params:      map[string]string{"campaignId": "Campaign ID"},
	},
	"fluentcrm_resume_campaign": {
		Description: "Resumes a paused campaign",
		Params:      map[string]string{"campaignId": "Campaign ID"},
	},
	"fluentcrm_delete_campaign": {
		Description: "Deletes a campaign",
		Params:      map[string]string{"campaignId": "Campaign ID"},
	},

	// Email templates
	"fluentcrm_list_email_templates": {Description: "Retrieves email templates"},
	"fluentcrm_get_email_template": {
		Description: "Retrieves a specific email template",
		Params:      map[string]string{"templateId": "Template ID"},
	},
	"fluentcrm_create_email_template": {
		Description: "Creates a new email template",
		Params: map[string]string{
			"title":   "Template name",
			"subject": "Subject",
			"body":    "HTML body content",
		},
	},
	"fluentcrm_update_email_template": {
		Description: "Updates an existing email template",
		Params: map[string]string{
			"templateId": "Template ID",
			"title":      "Template name",
			"subject":    "Subject",
			"body":       "HTML body content",
		},
	},
	"fluentcrm_delete_email_template": {
		Description: "Deletes an email template",
		Params:      map[string]string{"templateId": "Template ID"},
	},

	// Automations (funnels)
	"fluentcrm_list_automations": {
		Description: "Retrieves automations (funnels)",
		Params:      map[string]string{"page": "Page number", "search": "Search automations"},
	},
	"fluentcrm_get_automation": {
		Description: "Retrieves a specific automation (funnel) by ID",
		Params:      map[string]string{"funnelId": "Funnel ID"},
	},
	"fluentcrm_create_automation": {
		Description: "Creates a new automation",
		Params: map[string]string{
			"title":       "Automation name",
			"description": "Automation description",
			"trigger":     "Trigger type",
		},
	},
	"fluentcrm_update_automation": {
		Description: "Updates an automation's title or description",
		Params: map[string]string{
			"funnelId":    "Funnel ID",
			"title":       "Automation name",
			"description": "Automation description",
		},
	},
	"fluentcrm_delete_automation": {
		Description: "Deletes a funnel and stops all active sequences",
		Params:      map[string]string{"funnelId": "ID of the funnel to delete"},
	},
	"fluentcrm_update_funnel_status": {
		Description: "Updates a funnel's status (published, draft or paused)",
		Params: map[string]string{
			"funnelId": "Funnel ID",
			"status":   "New status: published, draft or paused",
		},
	},
	"fluentcrm_duplicate_funnel": {
		Description: "Creates a copy of an existing funnel",
		Params:      map[string]string{"funnelId": "ID of the funnel to copy"},
	},
	"fluentcrm_get_funnel_subscribers": {
		Description: "Retrieves subscribers enrolled in a funnel",
		Params: map[string]string{
			"funnelId": "Funnel ID",
			"status":   "Filter by status: active, completed or cancelled",
		},
	},
	"fluentcrm_update_funnel_subscriber_status": {
		Description: "Updates the status of a contact enrolled in a funnel (e.g. active, paused, cancelled)",
		Params: map[string]string{
			"funnelId":     "Funnel ID",
			"subscriberId": "Subscriber (contact) ID",
			"status":       "New status: active, paused or cancelled",
		},
	},
	"fluentcrm_remove_funnel_subscriber": {
		Description: "Removes one or more contacts from a funnel",
		Params: map[string]string{
			"funnelId":       "Funnel ID",
			"subscriber_ids": "Array of subscriber IDs to remove",
		},
	},
	"fluentcrm_add_subscribers_to_funnel": {
		Description: "Adds one or more contacts to a funnel (automation). Requires FluentCRM Pro.",
		Params: map[string]string{
			"funnelId":       "ID of the funnel the contacts will be enrolled into",
			"subscriber_ids": "Array of contact IDs to add to the funnel",
		},
	},
	"fluentcrm_get_funnel_report": {
		Description: "Retrieves a funnel's performance report",
		Params:      map[string]string{"funnelId": "Funnel ID"},
	},
	"fluentcrm_get_funnel_sequences": {
		Description: "Retrieves all steps (sequences/actions) in a funnel automation. Returns each step with its type, action name, settings and conditional branches.",
		Params:      map[string]string{"funnelId": "Funnel ID"},
	},

	// Webhooks
	"fluentcrm_list_webhooks": {Description: "Retrieves webhooks"},
	"fluentcrm_create_webhook": {
		Description: "Creates a new webhook",
		Params: map[string]string{
			"name":   "Webhook name",
			"url":    "Webhook URL",
			"status": `Webhook status (default: "pending")`,
			"tags":   "Tag IDs applied to contacts created through the webhook",
			"lists":  "List IDs applied to contacts created through the webhook",
		},
	},
	"fluentcrm_update_webhook": {
		Description: "Updates an existing webhook",
		Params: map[string]string{
			"webhookId": "Webhook ID",
			"name":      "Webhook name",
			"url":       "Webhook URL",
			"status":    "Webhook status",
			"tags":      "Tag IDs applied to contacts created through the webhook",
			"lists":     "List IDs applied to contacts created through the webhook",
		},
	},
	"fluentcrm_delete_webhook": {
		Description: "Deletes a webhook",
		Params:      map[string]string{"webhookId": "Webhook ID"},
	},

	// Custom fields and reports
	"fluentcrm_custom_fields":   {Description: "Retrieves custom fields"},
	"fluentcrm_dashboard_stats": {Description: "Retrieves dashboard statistics"},
	"fluentcrm_subscribers_growth_rate": {
		Description: "Retrieves the subscriber growth-rate report",
		Params: map[string]string{
			"from": "Start date (YYYY-MM-DD)",
			"to":   "End date (YYYY-MM-DD)",
		},
	},

	// Smart links
	"fluentcrm_list_smart_links": {
		Description: "Retrieves a list of Smart Links from FluentCRM (may not be available in all versions)",
		Params:      map[string]string{"page": "Page number", "search": "Search Smart Links"},
	},
	"fluentcrm_get_smart_link": {
		Description: "Retrieves details of a specific Smart Link",
		Params:      map[string]string{"smartLinkId": "Smart Link ID"},
	},
	"fluentcrm_create_smart_link": {
		Description: "Creates a new Smart Link (may not be available in all versions)",
		Params: map[string]string{
			"title":        `Smart Link name (e.g. "AW-Link-Webinar-Mail")`,
			"slug":         `Slug (e.g. "aw-link-webinar-mail")`,
			"target_url":   "Target URL",
			"apply_tags":   "Tag IDs to apply on click",
			"apply_lists":  "List IDs to apply on click",
			"remove_tags":  "Tag IDs to remove on click",
			"remove_lists": "List IDs to remove on click",
			"auto_login":   "Automatically log in the user on click",
		},
	},
	"fluentcrm_update_smart_link": {
		Description: "Updates a Smart Link (may not be available in all versions)",
		Params: map[string]string{
			"smartLinkId":  "Smart Link ID",
			"title":        "Smart Link name",
			"slug":         "Slug",
			"target_url":   "Target URL",
			"apply_tags":   "Tag IDs to apply on click",
			"apply_lists":  "List IDs to apply on click",
			"remove_tags":  "Tag IDs to remove on click",
			"remove_lists": "List IDs to remove on click",
			"auto_login":   "Automatically log in the user on click",
		},
	},
	"fluentcrm_delete_smart_link": {
		Description: "Deletes a Smart Link (may not be available in all versions)",
		Params:      map[string]string{"smartLinkId": "ID of the Smart Link to delete"},
	},
	"fluentcrm_generate_smart_link_shortcode": {
		Description: "Generates a shortcode for a Smart Link",
		Params:      map[string]string{"slug": "Smart Link slug", "linkText": "Link text (optional)"},
	},
	"fluentcrm_validate_smart_link_data": {
		Description: "Validates Smart Link data before creation",
		Params: map[string]string{
			"title":        "Smart Link name",
			"slug":         "Slug",
			"target_url":   "Target URL",
			"apply_tags":   "Tag IDs to apply on click",
			"apply_lists":  "List IDs to apply on click",
			"remove_tags":  "Tag IDs to remove on click",
			"remove_lists": "List IDs to remove on click",
			"auto_login":   "Automatically log in the user on click",
		},
	},
}

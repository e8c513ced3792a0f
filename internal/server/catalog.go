package server

import (
	"context"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"fluentcrm-mcp/internal/fluentcrm"
	"fluentcrm-mcp/internal/i18n"
)

// paramDef declares one input-schema property of a tool.
type paramDef struct {
	name     string
	typ      string
	items    string
	enum     []string
	required bool
}

// toolDef binds a tool name to its input schema and the client call it
// performs. The same table produces both the advertised tool list and the
// dispatch registry, so the two can never drift apart.
type toolDef struct {
	name   string
	params []paramDef
	call   func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error)
}

func text(name string) paramDef    { return paramDef{name: name, typ: "string"} }
func number(name string) paramDef  { return paramDef{name: name, typ: "number"} }
func flag(name string) paramDef    { return paramDef{name: name, typ: "boolean"} }
func numList(name string) paramDef { return paramDef{name: name, typ: "array", items: "number"} }
func strList(name string) paramDef { return paramDef{name: name, typ: "array", items: "string"} }

func (p paramDef) req() paramDef { p.required = true; return p }

func (p paramDef) oneOf(vals ...string) paramDef { p.enum = vals; return p }

// buildTool renders a toolDef into the wire-level tool declaration, with
// descriptions resolved through the translator.
func buildTool(def toolDef, tr *i18n.Translator) mcplib.Tool {
	props := make(map[string]any, len(def.params))
	var required []string
	for _, p := range def.params {
		schema := map[string]any{
			"type":        p.typ,
			"description": tr.Describe(def.name, p.name),
		}
		if p.typ == "array" {
			schema["items"] = map[string]any{"type": p.items}
		}
		if len(p.enum) > 0 {
			schema["enum"] = p.enum
		}
		props[p.name] = schema
		if p.required {
			required = append(required, p.name)
		}
	}
	return mcplib.Tool{
		Name:        def.name,
		Description: tr.Describe(def.name),
		InputSchema: mcplib.ToolInputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
	}
}

var catalogue = []toolDef{
	// Contacts
	{
		name:   "fluentcrm_list_contacts",
		params: []paramDef{number("page"), number("per_page"), text("search")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListContacts(ctx, args.query("page", "per_page", "search"))
		},
	},
	{
		name:   "fluentcrm_get_contact",
		params: []paramDef{number("subscriberId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetContact(ctx, args.num("subscriberId"))
		},
	},
	{
		name:   "fluentcrm_find_contact_by_email",
		params: []paramDef{text("email").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.FindContactByEmail(ctx, args.str("email"))
		},
	},
	{
		name: "fluentcrm_create_contact",
		params: []paramDef{
			text("email").req(), text("first_name"), text("last_name"),
			text("phone"), text("address_line_1"), text("city"),
			text("state"), text("country"), text("postal_code"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateContact(ctx, args.object())
		},
	},
	{
		name: "fluentcrm_update_contact",
		params: []paramDef{
			number("subscriberId").req(), text("email"),
			text("first_name"), text("last_name"), text("phone"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateContact(ctx, args.num("subscriberId"), args.object("subscriberId"))
		},
	},
	{
		name:   "fluentcrm_delete_contact",
		params: []paramDef{number("subscriberId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteContact(ctx, args.num("subscriberId"))
		},
	},

	// Tags
	{
		name:   "fluentcrm_list_tags",
		params: []paramDef{number("page"), text("search")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListTags(ctx, args.query("page", "search"))
		},
	},
	{
		name:   "fluentcrm_get_tag",
		params: []paramDef{number("tagId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetTag(ctx, args.num("tagId"))
		},
	},
	{
		name:   "fluentcrm_create_tag",
		params: []paramDef{text("title").req(), text("slug"), text("description")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateTag(ctx, args.object())
		},
	},
	{
		name:   "fluentcrm_update_tag",
		params: []paramDef{number("tagId").req(), text("title"), text("slug"), text("description")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateTag(ctx, args.num("tagId"), args.object("tagId"))
		},
	},
	{
		name:   "fluentcrm_delete_tag",
		params: []paramDef{number("tagId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteTag(ctx, args.num("tagId"))
		},
	},
	{
		name:   "fluentcrm_attach_tag_to_contact",
		params: []paramDef{number("subscriberId").req(), numList("tagIds").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.AttachTagToContact(ctx, args.num("subscriberId"), args.ints("tagIds"))
		},
	},
	{
		name:   "fluentcrm_detach_tag_from_contact",
		params: []paramDef{number("subscriberId").req(), numList("tagIds").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DetachTagFromContact(ctx, args.num("subscriberId"), args.ints("tagIds"))
		},
	},

	// Lists
	{
		name: "fluentcrm_list_lists",
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListLists(ctx, nil)
		},
	},
	{
		name:   "fluentcrm_get_list",
		params: []paramDef{number("listId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetList(ctx, args.num("listId"))
		},
	},
	{
		name:   "fluentcrm_create_list",
		params: []paramDef{text("title").req(), text("slug"), text("description")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateList(ctx, args.object())
		},
	},
	{
		name:   "fluentcrm_update_list",
		params: []paramDef{number("listId").req(), text("title"), text("slug"), text("description")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateList(ctx, args.num("listId"), args.object("listId"))
		},
	},
	{
		name:   "fluentcrm_delete_list",
		params: []paramDef{number("listId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteList(ctx, args.num("listId"))
		},
	},
	{
		name:   "fluentcrm_attach_contact_to_list",
		params: []paramDef{number("subscriberId").req(), numList("listIds").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.AttachContactToList(ctx, args.num("subscriberId"), args.ints("listIds"))
		},
	},
	{
		name:   "fluentcrm_detach_contact_from_list",
		params: []paramDef{number("subscriberId").req(), numList("listIds").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DetachContactFromList(ctx, args.num("subscriberId"), args.ints("listIds"))
		},
	},

	// Campaigns
	{
		name:   "fluentcrm_list_campaigns",
		params: []paramDef{number("page"), text("search")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListCampaigns(ctx, args.query("page", "search"))
		},
	},
	{
		name:   "fluentcrm_get_campaign",
		params: []paramDef{number("campaignId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetCampaign(ctx, args.num("campaignId"))
		},
	},
	{
		name: "fluentcrm_create_campaign",
		params: []paramDef{
			text("title").req(), text("subject").req(),
			number("template_id"), numList("recipient_list"),
			text("email_pre_header"), text("from_name"), text("from_email"),
			text("reply_to_name"), text("reply_to_email"),
			text("utm_source"), text("utm_medium"), text("utm_campaign"),
			text("utm_term"), text("utm_content"),
			numList("tags"), strList("contact_emails"), text("scheduled_at"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateCampaign(ctx, args.object())
		},
	},
	{
		name:   "fluentcrm_update_campaign",
		params: []paramDef{number("campaignId").req(), text("title"), text("subject")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateCampaign(ctx, args.num("campaignId"), args.object("campaignId"))
		},
	},
	{
		name:   "fluentcrm_pause_campaign",
		params: []paramDef{number("campaignId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.PauseCampaign(ctx, args.num("campaignId"))
		},
	},
	{
		name:   "fluentcrm_resume_campaign",
		params: []paramDef{number("campaignId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ResumeCampaign(ctx, args.num("campaignId"))
		},
	},
	{
		name:   "fluentcrm_delete_campaign",
		params: []paramDef{number("campaignId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteCampaign(ctx, args.num("campaignId"))
		},
	},

	// Email templates
	{
		name: "fluentcrm_list_email_templates",
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListEmailTemplates(ctx, nil)
		},
	},
	{
		name:   "fluentcrm_get_email_template",
		params: []paramDef{number("templateId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetEmailTemplate(ctx, args.num("templateId"))
		},
	},
	{
		name:   "fluentcrm_create_email_template",
		params: []paramDef{text("title").req(), text("subject").req(), text("body").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateEmailTemplate(ctx, args.object())
		},
	},
	{
		name:   "fluentcrm_update_email_template",
		params: []paramDef{number("templateId").req(), text("title"), text("subject"), text("body")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateEmailTemplate(ctx, args.num("templateId"), args.object("templateId"))
		},
	},
	{
		name:   "fluentcrm_delete_email_template",
		params: []paramDef{number("templateId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteEmailTemplate(ctx, args.num("templateId"))
		},
	},

	// Automations
	{
		name:   "fluentcrm_list_automations",
		params: []paramDef{number("page"), text("search")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListAutomations(ctx, args.query("page", "search"))
		},
	},
	{
		name:   "fluentcrm_get_automation",
		params: []paramDef{number("funnelId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetAutomation(ctx, args.num("funnelId"))
		},
	},
	{
		name:   "fluentcrm_create_automation",
		params: []paramDef{text("title").req(), text("description"), text("trigger").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateAutomation(ctx, args.object())
		},
	},
	{
		name:   "fluentcrm_update_automation",
		params: []paramDef{number("funnelId").req(), text("title"), text("description")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateAutomation(ctx, args.num("funnelId"), args.object("funnelId"))
		},
	},
	{
		name:   "fluentcrm_delete_automation",
		params: []paramDef{number("funnelId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteAutomation(ctx, args.num("funnelId"))
		},
	},
	{
		name: "fluentcrm_update_funnel_status",
		params: []paramDef{
			number("funnelId").req(),
			text("status").req().oneOf("published", "draft", "paused"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateFunnelStatus(ctx, args.num("funnelId"), args.str("status"))
		},
	},
	{
		name:   "fluentcrm_duplicate_funnel",
		params: []paramDef{number("funnelId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DuplicateFunnel(ctx, args.num("funnelId"))
		},
	},
	{
		name: "fluentcrm_get_funnel_subscribers",
		params: []paramDef{
			number("funnelId").req(),
			text("status").oneOf("active", "completed", "cancelled"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetFunnelSubscribers(ctx, args.num("funnelId"), args.query("status"))
		},
	},
	{
		name: "fluentcrm_update_funnel_subscriber_status",
		params: []paramDef{
			number("funnelId").req(), number("subscriberId").req(),
			text("status").req().oneOf("active", "paused", "cancelled"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateFunnelSubscriberStatus(ctx,
				args.num("funnelId"), args.num("subscriberId"), args.str("status"))
		},
	},
	{
		name:   "fluentcrm_remove_funnel_subscriber",
		params: []paramDef{number("funnelId").req(), numList("subscriber_ids").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.RemoveFunnelSubscribers(ctx, args.num("funnelId"), args.ints("subscriber_ids"))
		},
	},
	{
		name:   "fluentcrm_add_subscribers_to_funnel",
		params: []paramDef{number("funnelId").req(), numList("subscriber_ids").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.AddSubscribersToFunnel(ctx, args.num("funnelId"), args.ints("subscriber_ids"))
		},
	},
	{
		name:   "fluentcrm_get_funnel_report",
		params: []paramDef{number("funnelId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetFunnelReport(ctx, args.num("funnelId"))
		},
	},
	{
		name:   "fluentcrm_get_funnel_sequences",
		params: []paramDef{number("funnelId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetFunnelSequences(ctx, args.num("funnelId"))
		},
	},

	// Webhooks
	{
		name: "fluentcrm_list_webhooks",
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListWebhooks(ctx, nil)
		},
	},
	{
		name: "fluentcrm_create_webhook",
		params: []paramDef{
			text("name").req(), text("url").req(),
			text("status").oneOf("pending", "subscribed"),
			numList("tags"), numList("lists"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateWebhook(ctx, args.object())
		},
	},
	{
		name: "fluentcrm_update_webhook",
		params: []paramDef{
			number("webhookId").req(), text("name"), text("url"),
			text("status").oneOf("pending", "subscribed"),
			numList("tags"), numList("lists"),
		},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateWebhook(ctx, args.num("webhookId"), args.object("webhookId"))
		},
	},
	{
		name:   "fluentcrm_delete_webhook",
		params: []paramDef{number("webhookId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteWebhook(ctx, args.num("webhookId"))
		},
	},

	// Custom fields and reports
	{
		name: "fluentcrm_custom_fields",
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListCustomFields(ctx)
		},
	},
	{
		name: "fluentcrm_dashboard_stats",
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetDashboardStats(ctx)
		},
	},
	{
		name:   "fluentcrm_subscribers_growth_rate",
		params: []paramDef{text("from"), text("to")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetSubscribersGrowthRate(ctx, args.query("from", "to"))
		},
	},

	// Smart links
	{
		name:   "fluentcrm_list_smart_links",
		params: []paramDef{number("page"), text("search")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.ListSmartLinks(ctx, args.query("page", "search"))
		},
	},
	{
		name:   "fluentcrm_get_smart_link",
		params: []paramDef{number("smartLinkId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.GetSmartLink(ctx, args.num("smartLinkId"))
		},
	},
	{
		name:   "fluentcrm_create_smart_link",
		params: smartLinkParams(),
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.CreateSmartLink(ctx, args.smartLink())
		},
	},
	{
		name:   "fluentcrm_update_smart_link",
		params: append([]paramDef{number("smartLinkId").req()}, optionalSmartLinkParams()...),
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.UpdateSmartLink(ctx, args.num("smartLinkId"), args.object("smartLinkId"))
		},
	},
	{
		name:   "fluentcrm_delete_smart_link",
		params: []paramDef{number("smartLinkId").req()},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return c.DeleteSmartLink(ctx, args.num("smartLinkId"))
		},
	},
	{
		name:   "fluentcrm_generate_smart_link_shortcode",
		params: []paramDef{text("slug").req(), text("linkText")},
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			shortcode := fluentcrm.GenerateSmartLinkShortcode(args.str("slug"), args.str("linkText"))
			return map[string]any{"shortcode": shortcode}, nil
		},
	},
	{
		name:   "fluentcrm_validate_smart_link_data",
		params: smartLinkParams(),
		call: func(ctx context.Context, c *fluentcrm.Client, args arguments) (any, error) {
			return fluentcrm.ValidateSmartLinkData(args.smartLink()), nil
		},
	},
}

func smartLinkParams() []paramDef {
	return append([]paramDef{
		text("title").req(), text("slug"), text("target_url").req(),
	}, smartLinkActionParams()...)
}

func optionalSmartLinkParams() []paramDef {
	return append([]paramDef{
		text("title"), text("slug"), text("target_url"),
	}, smartLinkActionParams()...)
}

func smartLinkActionParams() []paramDef {
	return []paramDef{
		numList("apply_tags"), numList("apply_lists"),
		numList("remove_tags"), numList("remove_lists"),
		flag("auto_login"),
	}
}

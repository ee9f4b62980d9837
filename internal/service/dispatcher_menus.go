package service

import (
	"github.com/MKhiriev/proxy-desk-bot/internal/app"
	"github.com/MKhiriev/proxy-desk-bot/models"
)

// Callback tags carried by inline buttons.
const (
	TagMenu       = "menu"
	TagHelp       = "help"
	TagConnect    = "connect"
	TagDisconnect = "disconnect"

	TagAccounts        = "accounts"
	TagAccountsList    = "acc_list"
	TagAccountsAdd     = "acc_add"
	TagAccountsDelete  = "acc_delete"
	TagAccountsEnable  = "acc_enable"
	TagAccountsDisable = "acc_disable"
	TagAccountPassword = "acc_password"
	TagAccountRemark   = "acc_remark"
	TagAccountQuota    = "acc_quota"

	TagTraffic       = "traffic"
	TagTrafficToday  = "traffic_today"
	TagTraffic7d     = "traffic_7d"
	TagTraffic30d    = "traffic_30d"
	TagTrafficAll    = "traffic_all"
	TagTrafficCustom = "traffic_custom"

	TagLocations    = "locations"
	TagStatesSearch = "loc_states"
	TagCitiesSearch = "loc_cities"

	TagStaticIP       = "static_ip"
	TagStaticIPList   = "static_list"
	TagStaticIPFilter = "static_filter"

	TagProxyList   = "proxy_list"
	TagProxyRotate = "rotate"

	TagWhitelist       = "whitelist"
	TagWhitelistList   = "wl_list"
	TagWhitelistAdd    = "wl_add"
	TagWhitelistRemove = "wl_remove"

	TagSubusers       = "subusers"
	TagSubusersList   = "sub_list"
	TagSubuserCreate  = "sub_create"
	TagSubuserDisable = "sub_disable"
)

// promptAction is a button that asks for free-text input.
type promptAction struct {
	kind   models.PromptKind
	prompt string
}

var promptActions = map[string]promptAction{
	TagAccountsAdd:     {models.PromptBulkAddAccounts, app.MsgPromptBulkAdd},
	TagAccountsDelete:  {models.PromptBulkDeleteAccounts, app.MsgPromptBulkDelete},
	TagAccountsEnable:  {models.PromptEnableAccounts, app.MsgPromptEnable},
	TagAccountsDisable: {models.PromptDisableAccounts, app.MsgPromptDisable},
	TagAccountPassword: {models.PromptChangePassword, app.MsgPromptPassword},
	TagAccountRemark:   {models.PromptChangeRemark, app.MsgPromptRemark},
	TagAccountQuota:    {models.PromptChangeQuota, app.MsgPromptQuota},
	TagTrafficCustom:   {models.PromptCustomTimeRange, app.MsgPromptTimeRange},
	TagStatesSearch:    {models.PromptStateSearch, app.MsgPromptStateSearch},
	TagCitiesSearch:    {models.PromptCitySearch, app.MsgPromptCitySearch},
	TagStaticIPFilter:  {models.PromptStaticIPFilter, app.MsgPromptStaticFilter},
	TagProxyRotate:     {models.PromptProxyRotate, app.MsgPromptRotate},
	TagWhitelistAdd:    {models.PromptWhitelistAdd, app.MsgPromptWhitelistAdd},
	TagWhitelistRemove: {models.PromptWhitelistRemove, app.MsgPromptWhitelistDel},
	TagSubuserCreate:   {models.PromptSubuserCreate, app.MsgPromptSubuserCreate},
	TagSubuserDisable:  {models.PromptSubuserDisable, app.MsgPromptSubuserDisable},
}

// submenu is a button that only shows more buttons.
type submenu struct {
	title    string
	keyboard [][]models.Button
}

var backRow = []models.Button{{Text: "« Back", Data: TagMenu}}

var submenus = map[string]submenu{
	TagAccounts: {app.MsgSectionAccounts, [][]models.Button{
		{{Text: "List", Data: TagAccountsList}, {Text: "Add", Data: TagAccountsAdd}},
		{{Text: "Delete", Data: TagAccountsDelete}, {Text: "Enable", Data: TagAccountsEnable}, {Text: "Disable", Data: TagAccountsDisable}},
		{{Text: "Password", Data: TagAccountPassword}, {Text: "Remark", Data: TagAccountRemark}, {Text: "Quota", Data: TagAccountQuota}},
		backRow,
	}},
	TagTraffic: {app.MsgSectionTraffic + "\n" + app.MsgSectionTrafficRange, [][]models.Button{
		{{Text: "Today", Data: TagTrafficToday}, {Text: "7 days", Data: TagTraffic7d}, {Text: "30 days", Data: TagTraffic30d}},
		{{Text: "All time", Data: TagTrafficAll}, {Text: "Custom", Data: TagTrafficCustom}},
		backRow,
	}},
	TagLocations: {app.MsgSectionLocations, [][]models.Button{
		{{Text: "States", Data: TagStatesSearch}, {Text: "Cities", Data: TagCitiesSearch}},
		backRow,
	}},
	TagStaticIP: {app.MsgSectionStaticIPs, [][]models.Button{
		{{Text: "List", Data: TagStaticIPList}, {Text: "Filter", Data: TagStaticIPFilter}},
		backRow,
	}},
	TagWhitelist: {app.MsgSectionWhitelist, [][]models.Button{
		{{Text: "List", Data: TagWhitelistList}, {Text: "Add", Data: TagWhitelistAdd}, {Text: "Remove", Data: TagWhitelistRemove}},
		backRow,
	}},
	TagSubusers: {app.MsgSectionSubusers, [][]models.Button{
		{{Text: "List", Data: TagSubusersList}, {Text: "Create", Data: TagSubuserCreate}, {Text: "Disable", Data: TagSubuserDisable}},
		backRow,
	}},
}

func mainMenu(connected bool) [][]models.Button {
	if !connected {
		return [][]models.Button{
			{{Text: "🔑 Connect API key", Data: TagConnect}},
			{{Text: "❓ Help", Data: TagHelp}},
		}
	}

	return [][]models.Button{
		{{Text: "👥 Accounts", Data: TagAccounts}, {Text: "📊 Traffic", Data: TagTraffic}},
		{{Text: "🌍 Locations", Data: TagLocations}, {Text: "📌 Static IPs", Data: TagStaticIP}},
		{{Text: "📋 Proxy List", Data: TagProxyList}, {Text: "🔄 Rotate", Data: TagProxyRotate}},
		{{Text: "✅ Whitelist", Data: TagWhitelist}, {Text: "👤 Sub-users", Data: TagSubusers}},
		{{Text: "🔌 Disconnect", Data: TagDisconnect}, {Text: "❓ Help", Data: TagHelp}},
	}
}

func menuOnly() [][]models.Button {
	return [][]models.Button{backRow}
}

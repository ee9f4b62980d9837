// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing chat texts of proxy-desk-bot.
//
// All Msg* constants are shown to Telegram users as is. Keeping them in one
// place keeps the wording consistent between the dispatcher and the
// transport layer.
package app

import "github.com/MKhiriev/proxy-desk-bot/models"

const (
	// MsgWelcomeDisconnected greets a user who has not stored a key yet.
	MsgWelcomeDisconnected = "Welcome! Connect your provider API key to manage your proxy account."

	// MsgWelcomeConnected greets a user with a stored key.
	MsgWelcomeConnected = "Your provider account is connected. Choose a section."

	// MsgHelp lists what the bot can do.
	MsgHelp = "This bot manages your proxy provider account.\n\n" +
		"/start - main menu\n" +
		"/cancel - abort the current input\n" +
		"/help - this message\n\n" +
		"Your API key is stored encrypted and is only used to call the provider on your behalf."

	// MsgUseMenu answers plain text sent while no input is expected.
	MsgUseMenu = "Use the menu buttons below, or /start to open the main menu."

	// MsgUnknownAction answers a callback tag the bot does not know.
	MsgUnknownAction = "Unknown action."

	// MsgCancelled confirms that a pending input was dropped.
	MsgCancelled = "Cancelled."

	// MsgNothingToCancel answers /cancel with no pending input.
	MsgNothingToCancel = "Nothing to cancel."

	// MsgConnectFirst is shown when a data action needs a stored key.
	MsgConnectFirst = "Connect your API key first."

	// MsgSendAPIKey asks for the provider key.
	MsgSendAPIKey = "Send your provider API key as a single message. /cancel to abort."

	// MsgKeySaved confirms a stored and verified key.
	MsgKeySaved = "API key saved and verified."

	// MsgKeySavedUnverified reports a stored key the provider did not accept.
	MsgKeySavedUnverified = "API key saved, but verification failed. Check the key and connect again if needed."

	// MsgDisconnected confirms that the stored key was removed.
	MsgDisconnected = "Disconnected. Your API key was deleted."

	// MsgCredentialUnreadable is shown when a stored key cannot be decrypted.
	MsgCredentialUnreadable = "Your stored credential is unreadable, please reconnect."

	// MsgProviderUnreachable is shown for timeouts and connection errors.
	MsgProviderUnreachable = "The provider did not respond. Please try again in a moment."

	// MsgProviderRejected prefixes the provider's own error text.
	MsgProviderRejected = "The provider rejected the request"

	// MsgOperationNotConfigured is shown for operations missing from the
	// endpoint registry.
	MsgOperationNotConfigured = "This action is not configured on this bot."

	// MsgInvalidInput prefixes input format errors.
	MsgInvalidInput = "Invalid input"

	// MsgInternalError is shown for failures the user cannot resolve.
	MsgInternalError = "Something went wrong on our side. Please try again later."

	// MsgDone titles a successful provider call without its own title.
	MsgDone = "Done"

	// MsgTruncated marks a code block cut to fit one message.
	MsgTruncated = "… (truncated)"
)

// Prompts shown when the bot waits for free-text input.
const (
	MsgPromptBulkAdd        = "Send accounts to create, one per line as username:password."
	MsgPromptBulkDelete     = "Send usernames to delete, separated by commas, spaces or new lines."
	MsgPromptEnable         = "Send usernames to enable, separated by commas, spaces or new lines."
	MsgPromptDisable        = "Send usernames to disable, separated by commas, spaces or new lines."
	MsgPromptPassword       = "Send: username newpassword"
	MsgPromptRemark         = "Send: username remark text"
	MsgPromptQuota          = "Send: username quota (whole MB, 0 or more)"
	MsgPromptTimeRange      = "Send a UTC date range: YYYY-MM-DD or YYYY-MM-DD YYYY-MM-DD"
	MsgPromptStateSearch    = "Send a country code and an optional keyword, e.g. US or US york"
	MsgPromptCitySearch     = "Send a country code, a state and an optional keyword, e.g. US CA or US CA san"
	MsgPromptStaticFilter   = `Send a JSON filter, e.g. {"country_code":"US","status":"active","page":1,"page_size":20}`
	MsgPromptRotate         = "Send a proxy id, e.g. 123, or one key=value pair, e.g. session=abc"
	MsgPromptWhitelistAdd   = "Send the IP address or CIDR range to whitelist."
	MsgPromptWhitelistDel   = "Send the IP address or CIDR range to remove from the whitelist."
	MsgPromptSubuserCreate  = "Send: username password"
	MsgPromptSubuserDisable = "Send the username of the sub-user to disable."
	MsgPromptCancelSuffix   = "\n\n/cancel to abort."
	MsgSectionAccounts      = "Accounts"
	MsgSectionTraffic       = "Traffic usage"
	MsgSectionLocations     = "Locations"
	MsgSectionStaticIPs     = "Static IPs"
	MsgSectionWhitelist     = "IP whitelist"
	MsgSectionSubusers      = "Sub-users"
	MsgSectionTrafficRange  = "Choose a period."
)

// operationTitles names the result of each provider call.
var operationTitles = map[models.Operation]string{
	models.OpStatus:          "Account status",
	models.OpAccountsList:    "Accounts",
	models.OpAccountsAdd:     "Accounts created",
	models.OpAccountsDelete:  "Accounts deleted",
	models.OpAccountsEnable:  "Accounts enabled",
	models.OpAccountsDisable: "Accounts disabled",
	models.OpAccountPassword: "Password changed",
	models.OpAccountRemark:   "Remark changed",
	models.OpAccountQuota:    "Quota changed",
	models.OpTrafficUsage:    "Traffic usage",
	models.OpStatesList:      "States",
	models.OpCitiesList:      "Cities",
	models.OpStaticIPList:    "Static IPs",
	models.OpProxyList:       "Proxy list",
	models.OpProxyRotate:     "Rotation result",
	models.OpWhitelistList:   "IP whitelist",
	models.OpWhitelistAdd:    "Added to whitelist",
	models.OpWhitelistRemove: "Removed from whitelist",
	models.OpSubusersList:    "Sub-users",
	models.OpSubuserCreate:   "Sub-user created",
	models.OpSubuserDisable:  "Sub-user disabled",
}

// OperationTitle returns the heading shown above the result of op.
func OperationTitle(op models.Operation) string {
	if title, ok := operationTitles[op]; ok {
		return title
	}
	return MsgDone
}

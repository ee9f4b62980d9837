package validators

import "github.com/MKhiriev/proxy-desk-bot/models"

var expectedFormats = map[models.PromptKind]string{
	models.PromptConnectKey:         "your provider API key on a single line",
	models.PromptBulkAddAccounts:    "one account per line as username:password (the password may contain any character except spaces)",
	models.PromptBulkDeleteAccounts: "usernames separated by commas, spaces or new lines",
	models.PromptEnableAccounts:     "usernames separated by commas, spaces or new lines",
	models.PromptDisableAccounts:    "usernames separated by commas, spaces or new lines",
	models.PromptChangePassword:     "username newpassword",
	models.PromptChangeRemark:       "username remark text",
	models.PromptChangeQuota:        "username quota, where quota is a whole number of MB (0 or more)",
	models.PromptCustomTimeRange:    "YYYY-MM-DD or YYYY-MM-DD YYYY-MM-DD (UTC)",
	models.PromptStateSearch:        "country code and optional keyword, e.g. US or US york",
	models.PromptCitySearch:         "country code, state and optional keyword, e.g. US CA or US CA san",
	models.PromptStaticIPFilter:     `JSON object, e.g. {"country_code":"US","status":"active","page":1,"page_size":20}`,
	models.PromptProxyRotate:        "a proxy id, e.g. 123, or one key=value pair, e.g. session=abc",
	models.PromptWhitelistAdd:       "one IP address or CIDR range, e.g. 1.2.3.4",
	models.PromptWhitelistRemove:    "one IP address or CIDR range, e.g. 1.2.3.4",
	models.PromptSubuserCreate:      "username password",
	models.PromptSubuserDisable:     "a single username",
}

// ExpectedFormat returns the human-readable input format of kind.
func ExpectedFormat(kind models.PromptKind) string {
	if f, ok := expectedFormats[kind]; ok {
		return f
	}
	return "a supported command"
}

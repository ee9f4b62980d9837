// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/netip"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

const (
	FieldAccounts    = "accounts"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldRemark      = "remark"
	FieldQuota       = "quota"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldCountryCode = "country_code"
	FieldState       = "state"
	FieldKeyword     = "keyword"
	FieldProductType = "product_type"
	FieldStatus      = "status"
	FieldPage        = "page"
	FieldPageSize    = "page_size"
	FieldIP          = "ip"
	FieldProxyID     = "id"
)

const (
	dateLayout   = "2006-01-02"
	maxAPIKeyLen = 512
)

var staticIPFilterFields = map[string]struct{}{
	FieldCountryCode: {},
	FieldProductType: {},
	FieldStatus:      {},
	FieldPage:        {},
	FieldPageSize:    {},
}

// promptInputParser is the private implementation of [InputParser].
type promptInputParser struct{}

// NewInputParser returns the default [InputParser].
func NewInputParser() InputParser {
	return &promptInputParser{}
}

// Parse implements [InputParser].
func (p *promptInputParser) Parse(_ context.Context, kind models.PromptKind, text string) (models.ProviderRequest, error) {
	text = strings.TrimSpace(text)

	switch kind {
	case models.PromptBulkAddAccounts:
		return parseBulkAdd(text)
	case models.PromptBulkDeleteAccounts:
		return parseUsernames(kind, models.OpAccountsDelete, text)
	case models.PromptEnableAccounts:
		return parseUsernames(kind, models.OpAccountsEnable, text)
	case models.PromptDisableAccounts:
		return parseUsernames(kind, models.OpAccountsDisable, text)
	case models.PromptChangePassword:
		return parsePassword(text)
	case models.PromptChangeRemark:
		return parseRemark(text)
	case models.PromptChangeQuota:
		return parseQuota(text)
	case models.PromptCustomTimeRange:
		return parseTimeRange(text)
	case models.PromptStateSearch:
		return parseStateSearch(text)
	case models.PromptCitySearch:
		return parseCitySearch(text)
	case models.PromptStaticIPFilter:
		return parseStaticIPFilter(text)
	case models.PromptProxyRotate:
		return parseProxyRotate(text)
	case models.PromptWhitelistAdd:
		return parseWhitelistIP(kind, models.OpWhitelistAdd, text)
	case models.PromptWhitelistRemove:
		return parseWhitelistIP(kind, models.OpWhitelistRemove, text)
	case models.PromptSubuserCreate:
		return parseSubuserCreate(text)
	case models.PromptSubuserDisable:
		return parseSubuserDisable(text)
	default:
		return models.ProviderRequest{}, fmt.Errorf("%w: %q", ErrUnsupportedPrompt, kind)
	}
}

// ParseAPIKey implements [InputParser].
func (p *promptInputParser) ParseAPIKey(text string) (string, error) {
	key := strings.TrimSpace(text)
	switch {
	case key == "":
		return "", formatError(models.PromptConnectKey, "the key is empty")
	case strings.IndexFunc(key, unicode.IsSpace) >= 0:
		return "", formatError(models.PromptConnectKey, "the key must not contain spaces")
	case len(key) > maxAPIKeyLen:
		return "", formatError(models.PromptConnectKey, "the key is longer than %d characters", maxAPIKeyLen)
	}
	return key, nil
}

// parseBulkAdd reads one username:password per line. Blank lines are
// skipped but still counted, so error positions match what the user sent.
func parseBulkAdd(text string) (models.ProviderRequest, error) {
	kind := models.PromptBulkAddAccounts

	lines := strings.Split(text, "\n")
	accounts := make([]string, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		user, pass, ok := strings.Cut(line, ":")
		if !ok || user == "" || pass == "" {
			return models.ProviderRequest{}, formatError(kind, "line %d %q is not username:password", i+1, line)
		}
		if strings.IndexFunc(line, unicode.IsSpace) >= 0 {
			return models.ProviderRequest{}, formatError(kind, "line %d contains spaces", i+1)
		}
		accounts = append(accounts, line)
	}
	if len(accounts) == 0 {
		return models.ProviderRequest{}, formatError(kind, "no accounts given")
	}

	return models.ProviderRequest{
		Operation: models.OpAccountsAdd,
		Body:      map[string]any{FieldAccounts: strings.Join(accounts, "\n")},
	}, nil
}

func parseUsernames(kind models.PromptKind, op models.Operation, text string) (models.ProviderRequest, error) {
	names := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(names) == 0 {
		return models.ProviderRequest{}, formatError(kind, "no usernames given")
	}
	for _, n := range names {
		if strings.Contains(n, ":") {
			return models.ProviderRequest{}, formatError(kind, "%q looks like username:password, send usernames only", n)
		}
	}

	return models.ProviderRequest{
		Operation: op,
		Body:      map[string]any{FieldAccounts: strings.Join(names, ",")},
	}, nil
}

func parsePassword(text string) (models.ProviderRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return models.ProviderRequest{}, formatError(models.PromptChangePassword, "expected 2 words, got %d", len(fields))
	}

	return models.ProviderRequest{
		Operation: models.OpAccountPassword,
		Body:      map[string]any{FieldUsername: fields[0], FieldPassword: fields[1]},
	}, nil
}

func parseRemark(text string) (models.ProviderRequest, error) {
	username, remark, _ := strings.Cut(text, " ")
	username = strings.TrimSpace(username)
	remark = strings.TrimSpace(remark)

	// usernames may be followed by a newline instead of a space
	if i := strings.IndexFunc(username, unicode.IsSpace); i >= 0 {
		remark = strings.TrimSpace(username[i:] + " " + remark)
		username = username[:i]
	}

	if username == "" || remark == "" {
		return models.ProviderRequest{}, formatError(models.PromptChangeRemark, "username and remark are both required")
	}

	return models.ProviderRequest{
		Operation: models.OpAccountRemark,
		Body:      map[string]any{FieldUsername: username, FieldRemark: remark},
	}, nil
}

func parseQuota(text string) (models.ProviderRequest, error) {
	kind := models.PromptChangeQuota

	fields := strings.Fields(text)
	if len(fields) != 2 {
		return models.ProviderRequest{}, formatError(kind, "expected 2 words, got %d", len(fields))
	}

	quota, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || quota < 0 {
		return models.ProviderRequest{}, formatError(kind, "%q is not a whole number of 0 or more", fields[1])
	}

	return models.ProviderRequest{
		Operation: models.OpAccountQuota,
		Body:      map[string]any{FieldUsername: fields[0], FieldQuota: quota},
	}, nil
}

// parseTimeRange reads one or two UTC dates. The end date is inclusive, so
// end_time is the last second of that day.
func parseTimeRange(text string) (models.ProviderRequest, error) {
	kind := models.PromptCustomTimeRange

	fields := strings.Fields(text)
	if len(fields) < 1 || len(fields) > 2 {
		return models.ProviderRequest{}, formatError(kind, "expected 1 or 2 dates, got %d", len(fields))
	}

	start, err := time.ParseInLocation(dateLayout, fields[0], time.UTC)
	if err != nil {
		return models.ProviderRequest{}, formatError(kind, "%q is not a date", fields[0])
	}

	query := map[string]string{FieldStartTime: strconv.FormatInt(start.Unix(), 10)}

	if len(fields) == 2 {
		end, err := time.ParseInLocation(dateLayout, fields[1], time.UTC)
		if err != nil {
			return models.ProviderRequest{}, formatError(kind, "%q is not a date", fields[1])
		}
		if end.Before(start) {
			return models.ProviderRequest{}, formatError(kind, "end date is before start date")
		}
		query[FieldEndTime] = strconv.FormatInt(end.AddDate(0, 0, 1).Unix()-1, 10)
	}

	return models.ProviderRequest{Operation: models.OpTrafficUsage, Query: query}, nil
}

func parseStateSearch(text string) (models.ProviderRequest, error) {
	kind := models.PromptStateSearch

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return models.ProviderRequest{}, formatError(kind, "country code is required")
	}

	cc, err := countryCode(kind, fields[0])
	if err != nil {
		return models.ProviderRequest{}, err
	}

	query := map[string]string{FieldCountryCode: cc}
	if len(fields) > 1 {
		query[FieldKeyword] = strings.Join(fields[1:], " ")
	}

	return models.ProviderRequest{Operation: models.OpStatesList, Query: query}, nil
}

func parseCitySearch(text string) (models.ProviderRequest, error) {
	kind := models.PromptCitySearch

	fields := strings.Fields(text)
	if len(fields) < 2 {
		return models.ProviderRequest{}, formatError(kind, "country code and state are both required")
	}

	cc, err := countryCode(kind, fields[0])
	if err != nil {
		return models.ProviderRequest{}, err
	}

	query := map[string]string{FieldCountryCode: cc, FieldState: fields[1]}
	if len(fields) > 2 {
		query[FieldKeyword] = strings.Join(fields[2:], " ")
	}

	return models.ProviderRequest{Operation: models.OpCitiesList, Query: query}, nil
}

func countryCode(kind models.PromptKind, s string) (string, error) {
	if len(s) != 2 || !isASCIILetters(s) {
		return "", formatError(kind, "%q is not a 2-letter country code", s)
	}
	return strings.ToUpper(s), nil
}

func isASCIILetters(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func parseStaticIPFilter(text string) (models.ProviderRequest, error) {
	kind := models.PromptStaticIPFilter

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil || dec.More() {
		return models.ProviderRequest{}, formatError(kind, "not a JSON object")
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	query := make(map[string]string, len(raw))
	for _, k := range keys {
		if _, ok := staticIPFilterFields[k]; !ok {
			return models.ProviderRequest{}, formatError(kind, "unknown key %q", k)
		}

		switch v := raw[k].(type) {
		case string:
			query[k] = strings.TrimSpace(v)
		case json.Number:
			query[k] = v.String()
		default:
			return models.ProviderRequest{}, formatError(kind, "value of %q must be a string or a number", k)
		}

		if k == FieldPage || k == FieldPageSize {
			n, err := strconv.Atoi(query[k])
			if err != nil || n < 1 {
				return models.ProviderRequest{}, formatError(kind, "%q must be a positive whole number", k)
			}
		}
		if k == FieldCountryCode && query[k] != "" {
			cc, err := countryCode(kind, query[k])
			if err != nil {
				return models.ProviderRequest{}, err
			}
			query[k] = cc
		}
	}

	return models.ProviderRequest{Operation: models.OpStaticIPList, Query: query}, nil
}

// parseProxyRotate accepts a bare proxy id or a single key=value pair
// naming the rotation target, e.g. session=abc.
func parseProxyRotate(text string) (models.ProviderRequest, error) {
	kind := models.PromptProxyRotate

	if text == "" {
		return models.ProviderRequest{}, formatError(kind, "rotation target is empty")
	}

	body := make(map[string]any, 1)
	if key, value, ok := strings.Cut(text, "="); ok {
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			return models.ProviderRequest{}, formatError(kind, "both sides of %q are required", "=")
		}
		if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
			return models.ProviderRequest{}, formatError(kind, "key %q contains spaces", key)
		}
		body[key] = value
	} else {
		if strings.IndexFunc(text, unicode.IsSpace) >= 0 {
			return models.ProviderRequest{}, formatError(kind, "proxy id %q contains spaces", text)
		}
		body[FieldProxyID] = text
	}

	return models.ProviderRequest{Operation: models.OpProxyRotate, Body: body}, nil
}

// parseWhitelistIP accepts one IPv4 or IPv6 address or CIDR range.
func parseWhitelistIP(kind models.PromptKind, op models.Operation, text string) (models.ProviderRequest, error) {
	var ip string
	if strings.Contains(text, "/") {
		prefix, err := netip.ParsePrefix(text)
		if err != nil {
			return models.ProviderRequest{}, formatError(kind, "%q is not an IP range", text)
		}
		ip = prefix.String()
	} else {
		addr, err := netip.ParseAddr(text)
		if err != nil {
			return models.ProviderRequest{}, formatError(kind, "%q is not an IP address", text)
		}
		ip = addr.String()
	}

	return models.ProviderRequest{Operation: op, Body: map[string]any{FieldIP: ip}}, nil
}

func parseSubuserCreate(text string) (models.ProviderRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return models.ProviderRequest{}, formatError(models.PromptSubuserCreate, "expected 2 words, got %d", len(fields))
	}

	return models.ProviderRequest{
		Operation: models.OpSubuserCreate,
		Body:      map[string]any{FieldUsername: fields[0], FieldPassword: fields[1]},
	}, nil
}

func parseSubuserDisable(text string) (models.ProviderRequest, error) {
	fields := strings.Fields(text)
	if len(fields) != 1 {
		return models.ProviderRequest{}, formatError(models.PromptSubuserDisable, "expected 1 username, got %d words", len(fields))
	}

	return models.ProviderRequest{
		Operation: models.OpSubuserDisable,
		Body:      map[string]any{FieldUsername: fields[0]},
	}, nil
}

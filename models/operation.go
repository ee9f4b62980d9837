// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"net/http"
)

// Operation is a logical provider API call. The set is closed: deployments
// may remap the method and path of an operation, but cannot invent new ones.
type Operation string

const (
	OpStatus          Operation = "status"
	OpAccountsList    Operation = "accounts_list"
	OpAccountsAdd     Operation = "accounts_add"
	OpAccountsDelete  Operation = "accounts_delete"
	OpAccountsEnable  Operation = "accounts_enable"
	OpAccountsDisable Operation = "accounts_disable"
	OpAccountPassword Operation = "account_password"
	OpAccountRemark   Operation = "account_remark"
	OpAccountQuota    Operation = "account_quota"
	OpTrafficUsage    Operation = "traffic_usage"
	OpStatesList      Operation = "states_list"
	OpCitiesList      Operation = "cities_list"
	OpStaticIPList    Operation = "static_ip_list"
	OpProxyList       Operation = "proxy_list"
	OpProxyRotate     Operation = "proxy_rotate"
	OpWhitelistList   Operation = "whitelist_list"
	OpWhitelistAdd    Operation = "whitelist_add"
	OpWhitelistRemove Operation = "whitelist_remove"
	OpSubusersList    Operation = "subusers"
	OpSubuserCreate   Operation = "subuser_create"
	OpSubuserDisable  Operation = "subuser_disable"
)

// AllOperations lists every operation the bot knows how to call.
var AllOperations = []Operation{
	OpStatus,
	OpAccountsList,
	OpAccountsAdd,
	OpAccountsDelete,
	OpAccountsEnable,
	OpAccountsDisable,
	OpAccountPassword,
	OpAccountRemark,
	OpAccountQuota,
	OpTrafficUsage,
	OpStatesList,
	OpCitiesList,
	OpStaticIPList,
	OpProxyList,
	OpProxyRotate,
	OpWhitelistList,
	OpWhitelistAdd,
	OpWhitelistRemove,
	OpSubusersList,
	OpSubuserCreate,
	OpSubuserDisable,
}

// ParseOperation converts a configuration key into an [Operation].
// It returns an error for names outside the closed set.
func ParseOperation(name string) (Operation, error) {
	for _, op := range AllOperations {
		if string(op) == name {
			return op, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", name)
}

// Endpoint binds an operation to an HTTP method and a path template.
// Path may contain {placeholders} filled from query parameters, or be an
// absolute http(s) URL that bypasses the provider base URL.
type Endpoint struct {
	Method string `json:"method" yaml:"method"`
	Path   string `json:"path" yaml:"path"`
}

// Configured reports whether the endpoint can be called.
func (e Endpoint) Configured() bool {
	return e.Method != "" && e.Path != ""
}

// SendsBody reports whether parameters travel in a JSON body rather than
// in the query string.
func (e Endpoint) SendsBody() bool {
	switch e.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

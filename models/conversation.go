// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PromptKind names the free-text input a user has been asked for.
type PromptKind string

const (
	PromptNone               PromptKind = ""
	PromptConnectKey         PromptKind = "connect_key"
	PromptBulkAddAccounts    PromptKind = "bulk_add_accounts"
	PromptBulkDeleteAccounts PromptKind = "bulk_delete_accounts"
	PromptEnableAccounts     PromptKind = "enable_accounts"
	PromptDisableAccounts    PromptKind = "disable_accounts"
	PromptChangePassword     PromptKind = "change_password"
	PromptChangeRemark       PromptKind = "change_remark"
	PromptChangeQuota        PromptKind = "change_quota"
	PromptCustomTimeRange    PromptKind = "custom_time_range"
	PromptStateSearch        PromptKind = "state_search"
	PromptCitySearch         PromptKind = "city_search"
	PromptStaticIPFilter     PromptKind = "static_ip_filter"
	PromptProxyRotate        PromptKind = "proxy_rotate"
	PromptWhitelistAdd       PromptKind = "whitelist_add"
	PromptWhitelistRemove    PromptKind = "whitelist_remove"
	PromptSubuserCreate      PromptKind = "subuser_create"
	PromptSubuserDisable     PromptKind = "subuser_disable"
)

// AllPromptKinds lists every pending-input kind in menu order.
var AllPromptKinds = []PromptKind{
	PromptConnectKey,
	PromptBulkAddAccounts,
	PromptBulkDeleteAccounts,
	PromptEnableAccounts,
	PromptDisableAccounts,
	PromptChangePassword,
	PromptChangeRemark,
	PromptChangeQuota,
	PromptCustomTimeRange,
	PromptStateSearch,
	PromptCitySearch,
	PromptStaticIPFilter,
	PromptProxyRotate,
	PromptWhitelistAdd,
	PromptWhitelistRemove,
	PromptSubuserCreate,
	PromptSubuserDisable,
}

// Valid reports whether k is one of the known prompt kinds.
func (k PromptKind) Valid() bool {
	for _, known := range AllPromptKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ConversationState is the volatile per-user marker of a pending prompt.
// The zero value is the Idle state.
type ConversationState struct {
	Prompt PromptKind
	SetAt  time.Time
}

// Idle reports whether no prompt is pending.
func (s ConversationState) Idle() bool {
	return s.Prompt == PromptNone
}

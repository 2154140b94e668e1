// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no listen address or
// no router is configured for the local API.
var errNoServersAreCreated = errors.New("no servers are created: local API address or router missing")

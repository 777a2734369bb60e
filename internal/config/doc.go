// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the startup configuration of the MUD.
//
// Configuration is read from fixed JSON files in the working directory:
//  1. defaults.config.json, always;
//  2. server.config.json or singleuser.config.json, depending on [Mode].
//
// [NewManager] runs both steps and returns a ready [Manager] or a
// [*LoadError]. The mode-specific document becomes the active configuration;
// the defaults document stays reachable through [Manager.Defaults] and is not
// merged into it. Lookups go through [Store], which reports a missing key as
// (nil, false) instead of failing.
package config

package cache

import "github.com/krisalay/policy-cache/api"

var _ api.Cache = (*Cache)(nil)

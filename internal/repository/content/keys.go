package content

import "github.com/clipstack/tagrank/internal/domain"

// Key layout:
//
//	tagrank:item:<id>        hash    item fields
//	tagrank:tag:<token>      set     item IDs carrying the token
//	tagrank:public           zset    public item IDs scored by created_at
//	tagrank:owner:<id>       zset    all items of an owner scored by created_at
//	tagrank:pubowner:<id>    zset    public items of an owner scored by created_at

func itemKey(id string) string { return domain.KeyPrefix + "item:" + id }

func tagKey(token string) string { return domain.KeyPrefix + "tag:" + token }

func publicKey() string { return domain.KeyPrefix + "public" }

func ownerKey(ownerID string) string { return domain.KeyPrefix + "owner:" + ownerID }

func ownerPubKey(ownerID string) string { return domain.KeyPrefix + "pubowner:" + ownerID }

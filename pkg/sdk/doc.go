// Package tagrank provides an embedded Go client for the tagrank content
// ranking engine backed by Valkey or Redis.
//
// The client connects straight to the database and runs the same tag
// derivation, query expansion, and scoring pipeline as the HTTP service:
//
//	client, _ := tagrank.New(ctx, tagrank.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	it, _ := client.Items().Create(ctx, tagrank.CreateItemParams{
//	    OwnerID:     "user-1",
//	    Title:       "Cats and Dogs",
//	    Description: "a fun video about cats",
//	})
//	page, _ := client.Search().Query(ctx, "cat videos", tagrank.SearchOptions{ViewerID: "user-2"})
package tagrank

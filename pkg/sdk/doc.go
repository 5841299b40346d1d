// Package matchdex provides a Go client for the matchdex project
// similarity service.
//
//	client := matchdex.New("http://localhost:8080")
//
//	records, err := client.Match(ctx, "Smart Grid", "A study of power distribution.")
//	if err != nil { ... }
//	for _, r := range records {
//	    fmt.Println(r.Title, r.MatchingScore, r.MatchingComments)
//	}
//
// Every match run is persisted under a session guid shared by all of its
// records; Session replays a stored run:
//
//	records, err = client.Session(ctx, records[0].SearchGUID)
//
// Corpus management:
//
//	f, _ := os.Open("projects.csv") // id,title,abstract
//	loaded, err := client.LoadCorpus(ctx, f)
//	report, err := client.BackfillEmbeddings(ctx)
package matchdex

/*
Package itemstore provides a type-safe repository facade over pluggable data
clients, with change notifications broadcast after successful mutations.

A Repository[T] owns nothing but a DataClient[T] and a notification channel.
It forwards each call to the client, unwraps the response envelope, and
propagates client errors verbatim. Successful Create, Update, and Delete
calls publish a ChangeEvent tagged with the item's type name; reads never
publish.

Basic Usage:

	client, _ := ddb.NewDataClientFromEnv[User]()
	repo := itemstore.New[User](client)
	defer repo.Close()

	events, cancel := repo.Subscribe()
	defer cancel()

	created, err := repo.Create(ctx, User{ID: "123", Name: "John"})

Multiple repositories over different item types can be held in one
MultiTypeRepos and retrieved with full type safety:

	reg := itemstore.NewMultiTypeRepos()
	itemstore.RegisterRepo(reg, "users", repo)
	userRepo, _ := itemstore.GetRepo[User](reg, "users")

For more information, see the documentation at https://github.com/suparena/itemstore
*/
package itemstore

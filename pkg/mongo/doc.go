// Package mongo stores documents in MongoDB.
//
// Connect builds a client from Config, which is loaded from MONGODB_*
// environment variables, pinging the server and retrying a configurable
// number of times. Healthcheck returns a ping function for readiness
// checks.
//
// A Store binds a document.Model to its collection:
//
//	db, err := mongo.ConnectDatabase(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	posts := mongo.NewStore(db, postModel)
//
//	doc := postModel.New(map[string]any{"t": "hello"})
//	if err := posts.Save(ctx, doc); err != nil {
//		// errors.Is(err, validation.ErrInvalid) for invalid documents
//	}
//
// Save inserts new documents with their full BSON shape and updates stored
// ones with the operators derived from their change set, so concurrent
// element-wise changes to the same array or set are not overwritten.
package mongo

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the document-store implementations behind the
consensus engine.

# Mongo

The production implementation, over two collections (hangouts,
user_documents). Every mutation is a field-scoped conditional update:

  - vote counters move with $inc (racing increments are never lost)
  - membership arrays grow with a guarded $push keeping the id and
    email arrays positionally parallel
  - the Pending → Finalized flip is a $set conditioned on the status
    still being Pending, making finalization one-shot under races

A conditional update that matches no document surfaces
models.ErrConcurrentUpdate so callers retry from a fresh read. Documents
are never written back whole.

Connect opens and pings a client:

	client, err := store.Connect(ctx, cfg.MongoURI)
	st := store.NewMongo(client.Database(cfg.DatabaseName))

# Memory

An in-process implementation with the same conditional semantics under
a single mutex. The test suite runs entirely against it, and main falls
back to it when no MongoDB is configured (state is lost on restart).
*/
package store

// Package docmodel is a schema-driven typed attribute engine for
// semi-structured documents.
//
// Models declare typed keys; documents coerce raw input into those types,
// track which keys and which collection elements changed since load, and
// validate themselves through a chain of field and record level validators
// that collects every failure into a report.
//
// The packages under pkg/ can be used on their own. This package wires them
// together from environment configuration:
//
//	cfg, err := docmodel.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	rt, err := docmodel.NewRuntime(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	posts := rt.NewModel("post").
//		MustKey("title", types.KindString, schema.Required(), schema.WithLength(1, 10))
//
//	doc := posts.New(map[string]any{"title": ""})
//	if !doc.Validate() {
//		fmt.Println(rt.Localize(doc.Failures())) // map[title:[can't be empty]]
//	}
//
// Configuration is read from DOCMODEL_LOG_LEVEL, DOCMODEL_LOG_FORMAT,
// DOCMODEL_LOCALE and DOCMODEL_MESSAGES_PATH.
package docmodel

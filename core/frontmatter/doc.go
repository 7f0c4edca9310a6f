// Package frontmatter reads the metadata block that prefixes publishable
// text documents such as blog articles.
//
// A document starts with a YAML block fenced by "---" lines, followed by
// the body. The package splits the two, unmarshals the block into any
// struct, and provides a small document model for loading a directory of
// articles.
//
// # Usage
//
// Parsing into the standard article metadata:
//
//	import "github.com/dmitrymomot/corekit/core/frontmatter"
//
//	var meta frontmatter.Meta
//	body, err := frontmatter.Parse(data, &meta)
//	if err != nil {
//		return err
//	}
//	meta.Title     // "Working with ranges"
//	meta.Framework // "Foundation"
//	meta.Rating    // 4.5
//
// Custom metadata shapes work the same way:
//
//	var meta struct {
//		Title string   `yaml:"title"`
//		Tags  []string `yaml:"tags"`
//	}
//	body, err := frontmatter.Parse(data, &meta)
//
// Loading a directory of articles:
//
//	docs, err := frontmatter.LoadDir(os.DirFS("content"), ".")
//	for _, doc := range docs {
//		fmt.Println(doc.Meta.Title)
//	}
//
// Documents without a front-matter block are not an error: Split returns
// an empty head and the whole input as body.
package frontmatter

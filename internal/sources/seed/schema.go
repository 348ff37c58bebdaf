package seed

// File represents the top-level structure of the seed file.
//
//	links:
//	  - url: https://example.com/docs
//	    code: docs
//	  - url: https://example.com/blog
type File struct {
	Links []Entry `yaml:"links"`
}

// Entry is one link to create at startup. Code is optional.
type Entry struct {
	URL  string `yaml:"url"`
	Code string `yaml:"code,omitempty"`
}

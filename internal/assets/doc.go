// Package assets provides the stylesheets of the HTML preview.
//
// Styles are looked up by name:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles (default, print)
//	    ├── FilesystemLoader  - {basePath}/styles/{name}.css on disk
//	    └── Resolver          - custom directory first, then built-in
//
// A custom directory may override a built-in style by reusing its name.
//
// Names never contain separators or dots. FilesystemLoader resolves symlinks
// and rejects files outside its base directory.
package assets

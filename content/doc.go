/*
Package content loads blog posts and projects from a directory of Markdown files
and answers the queries a portfolio site needs: by slug, newest first, by
category, featured or not, recent, and paginated.

A collection is a single folder inside an fs.FS. Every file ending in ".md" or
".mdx" is one item, and the file name without the extension is its slug:

	content/blog/hello.md       -> slug "hello"
	content/projects/folio.mdx  -> slug "folio"

Hidden files (those starting with ".") and subfolders are ignored. If both
"hello.md" and "hello.mdx" exist, "hello.md" is used and "hello.mdx" is
reported by Check.

Front Matter

Files may start with front matter in YAML, delimited by "---", or TOML,
delimited by "+++". For example:

	---
	title: "Hello"
	date: "2024-01-01"
	category: "Tech"
	tags: [go, web]
	---
	World

Front matter keys for posts:

	Name          Type               Default
	-----------   ----------------   ---------------------
	title         string             ""
	description   string             ""
	date          date or string     ""
	readTime      string             "5 min read"
	author        string             "Edison Nkemande"
	category      string             "General"
	tags          array of strings   none
	youtubeId     string             none
	youtubeTitle  string             none

Projects add longDescription, image (default "🚀"), role, impact, featured
(bool), github and live.

Values that are missing, empty or of the wrong type fall back to their
defaults. Front matter that cannot be parsed at all is logged and the item is
served with defaults only; it is never an error for a query.

Ordering

Lists are ordered by date, newest first. Dates are parsed leniently; an item
whose date is missing or cannot be parsed is treated as the oldest. Items with
the same date keep slug order.

Reads

Nothing is cached here: every call reads the folder again, so an edited file is
visible on the next query. Wrap the fs.FS with the cache package to trade that
for fewer reads. A folder that does not exist holds no items.
*/
package content

/*
Package templating renders the pages of the site builder with html/template.

Pages (*.tmpl.html) and partials (*.part.html) are embedded in the binary. An
optional override directory may supply files with the same names, which replace
the embedded versions; when watching is enabled the override directory is
reloaded automatically after it changes. Rendering is safe for concurrent use
while a reload is in progress.
*/
package templating

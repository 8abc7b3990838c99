/*
Package wizard implements the two-step website builder flow.

A Wizard moves through three steps: collecting the business details, reviewing
them, and the terminal generated step. Leaving the collecting step requires a
business name and type. Generation is delegated to a Generator and runs as a
single cancellable task guarded by a busy flag; when it succeeds the record is
frozen with a generation timestamp and handed to the preview. Reset discards
everything, including an in-flight generation.

All Wizard methods are safe for concurrent use.
*/
package wizard

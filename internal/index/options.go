package index

// Options carries the ingest-time configuration from §6 that affects
// phase one: "A declaration that is objc-accessible is retained when the
// configuration option retain-objc-accessible is set."
type Options struct {
	RetainObjcAccessible bool
}

package geometry

import "ashraeload/model"

// errDecodeFailed wraps an unreadable image file as InvalidInput, per
// spec.md's decode-failure contract.
func errDecodeFailed(path string) error {
	return model.NewError(model.KindInvalidInput, "could not decode image %q", path)
}

// errUnsupportedDocument marks a document format (e.g. a multi-page PDF)
// this extractor does not rasterize.
func errUnsupportedDocument(path string) error {
	return model.NewError(model.KindUnsupportedFormat, "unsupported document format: %q", path)
}

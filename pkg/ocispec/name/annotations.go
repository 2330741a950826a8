package name

import (
	imgspecv1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// Annotations returns the OCI image-spec annotations describing img as the
// base image of another image. The tag is recorded as the ref name. Absent
// parts produce no annotation.
func (img Image) Annotations() map[string]string {
	base := img.WithoutDigest()
	annotations := map[string]string{
		imgspecv1.AnnotationBaseImageName: base.String(),
	}
	if tag, ok := img.Tag(); ok {
		annotations[imgspecv1.AnnotationRefName] = tag.String()
	}
	if dgst, ok := img.Digest(); ok {
		annotations[imgspecv1.AnnotationBaseImageDigest] = dgst.String()
	}
	return annotations
}

// FromAnnotations rebuilds the base image recorded by Annotations. It
// returns false when no base image name is present.
func FromAnnotations(annotations map[string]string) (Image, bool, error) {
	ref, ok := annotations[imgspecv1.AnnotationBaseImageName]
	if !ok {
		return Image{}, false, nil
	}
	img, err := Parse(ref)
	if err != nil {
		return Image{}, true, err
	}
	if encoded, ok := annotations[imgspecv1.AnnotationBaseImageDigest]; ok {
		dgst, err := ParseDigest(encoded)
		if err != nil {
			return Image{}, true, err
		}
		img = img.WithDigest(dgst)
	}
	return img, true, nil
}

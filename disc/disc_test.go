package disc

import (
	"errors"
	"testing"
)

func rawHeader(gameID string, discID, version byte) []byte {
	raw := make([]byte, 8)
	copy(raw[0:6], gameID)
	raw[6] = discID
	raw[7] = version
	return raw
}

func TestParseHeaderReadsFields(t *testing.T) {
	h, err := ParseHeader(rawHeader("GM8E01", 0, 2))
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if string(h.GameID[:]) != "GM8E01" || h.DiscID != 0 || h.Version != 2 {
		t.Errorf("Expected GM8E01/0/2, got %s/%d/%d", h.GameID, h.DiscID, h.Version)
	}
}

func TestParseHeaderRejectsTruncatedImage(t *testing.T) {
	if _, err := ParseHeader([]byte{1, 2, 3}); err == nil {
		t.Errorf("Expected an error for an image shorter than 8 bytes")
	}
}

func TestHeaderSupportedMatchesEveryTuple(t *testing.T) {
	for _, tuple := range SupportedTuples {
		h := Header{DiscID: tuple.DiscID, Version: tuple.Version}
		copy(h.GameID[:], tuple.GameID)
		if !h.Supported() {
			t.Errorf("Expected tuple %+v to be reported as supported", tuple)
		}
	}
}

func TestHeaderSupportedRejectsUnknownTuple(t *testing.T) {
	h := Header{DiscID: 0, Version: 0}
	copy(h.GameID[:], "ZZZZZZ")
	if h.Supported() {
		t.Errorf("Expected an unrecognized header to be unsupported")
	}
}

func TestOpenRejectsUnsupportedHeader(t *testing.T) {
	raw := rawHeader("ZZZZZZ", 0, 0)
	if _, err := Open(raw, nil); !errors.Is(err, ErrUnsupportedHeader) {
		t.Errorf("Expected ErrUnsupportedHeader, got %v", err)
	}
}

func TestOpenRejectsAlreadyPatchedMarker(t *testing.T) {
	raw := rawHeader("GM8E01", 0, 0)
	files := []*File{{Path: "randomprime.txt", Data: []byte("patched")}}
	if _, err := Open(raw, files); !errors.Is(err, ErrAlreadyPatched) {
		t.Errorf("Expected ErrAlreadyPatched, got %v", err)
	}
}

func TestOpenReturnsReadyImage(t *testing.T) {
	raw := rawHeader("GM8E01", 0, 0)
	files := []*File{{Path: "Metroid1.pak", Data: []byte("data")}}
	img, err := Open(raw, files)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if img.Header.GameID != [6]byte{'G', 'M', '8', 'E', '0', '1'} {
		t.Errorf("Expected the header to be carried through, got %v", img.Header)
	}
	if len(img.Files) != 1 {
		t.Errorf("Expected the file list to be carried through, got %d files", len(img.Files))
	}
}

func TestImageFileFindsByExactPath(t *testing.T) {
	img := &Image{Files: []*File{{Path: "Metroid1.pak", Data: []byte("a")}, {Path: "Metroid2.pak", Data: []byte("b")}}}

	f, ok := img.File("Metroid2.pak")
	if !ok || string(f.Data) != "b" {
		t.Errorf("Expected to find Metroid2.pak with data \"b\", got %v ok=%v", f, ok)
	}

	if _, ok := img.File("Nonexistent.pak"); ok {
		t.Errorf("Expected File to report not-found for an unknown path")
	}
}

func TestImageMarkPatchedAppendsMarker(t *testing.T) {
	img := &Image{Files: []*File{{Path: "Metroid1.pak"}}}
	img.MarkPatched("seed=1234")

	f, ok := img.File("randomprime.txt")
	if !ok {
		t.Fatalf("Expected MarkPatched to append the marker file")
	}
	if string(f.Data) != "seed=1234" {
		t.Errorf("Expected the marker's data to carry the comment, got %q", f.Data)
	}
	if len(img.Files) != 2 {
		t.Errorf("Expected MarkPatched to leave existing files untouched, got %d files", len(img.Files))
	}
}

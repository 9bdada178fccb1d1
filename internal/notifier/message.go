package notifier

import "time"

const maxMediaGroupSize = 10

type (
	Message struct {
		Text           string
		PhotoURLs      []string
		VideoURLs      []string
		DisablePreview bool
	}

	// InputPhoto is a single item of a media group.
	InputPhoto struct {
		URL     string
		Caption string
	}

	Update struct {
		ID           int
		Time         time.Time
		ChatID       string
		ChatUsername string
		Text         string
	}
)

// NewMessage returns a plain text message with link previews disabled.
func NewMessage(text string) Message {
	return Message{
		Text:           text,
		DisablePreview: true,
	}
}

func (m Message) WithPhotos(urls ...string) Message {
	m.PhotoURLs = urls
	return m
}

func (m Message) WithVideos(urls ...string) Message {
	m.VideoURLs = urls
	return m
}

func (m Message) WithPreview() Message {
	m.DisablePreview = false
	return m
}

// TextOnly drops all media from the message.
func (m Message) TextOnly() Message {
	m.PhotoURLs = nil
	m.VideoURLs = nil
	return m
}

func (m Message) hasMedia() bool {
	return len(m.PhotoURLs) > 0 || len(m.VideoURLs) > 0
}

// mediaGroup builds an album out of the photos. Only the first item carries the caption.
func (m Message) mediaGroup() []InputPhoto {
	size := min(len(m.PhotoURLs), maxMediaGroupSize)
	res := make([]InputPhoto, 0, size)
	for i, url := range m.PhotoURLs[:size] {
		item := InputPhoto{URL: url}
		if i == 0 {
			item.Caption = m.Text
		}
		res = append(res, item)
	}
	return res
}

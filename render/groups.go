package render

import "github.com/bgraf/exifview/data"

// Category is a fixed heading with the tag names shown below it.
type Category struct {
	Label string
	Icon  string
	Tags  []string
}

// Categories is the grouping used by the grouped metadata view.
var Categories = []Category{
	{Label: "Location", Icon: "📍", Tags: []string{"GPSLatitude", "GPSLongitude", "GPSAltitude"}},
	{Label: "Camera Info", Icon: "📷", Tags: []string{"Make", "Model", "LensModel"}},
	{Label: "Shooting Settings", Icon: "🔧", Tags: []string{"ExposureTime", "FNumber", "ISOSpeedRatings"}},
	{Label: "Date & Time", Icon: "🗓️", Tags: []string{"DateTimeOriginal", "DateTime"}},
	{Label: "Image Properties", Icon: "🖼️", Tags: []string{"Orientation", "ImageWidth", "ImageHeight"}},
}

// Item is one rendered tag line.
type Item struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

type Group struct {
	Category Category
	Items    []Item
}

func (g Group) IsEmpty() bool {
	return len(g.Items) == 0
}

// GroupSnapshot lays out the snapshot along Categories. Tags missing from the
// snapshot are skipped; a category without any present tag has no items.
func GroupSnapshot(snapshot *data.Snapshot) []Group {
	groups := make([]Group, len(Categories))

	for i, category := range Categories {
		groups[i].Category = category
		groups[i].Items = []Item{}

		for _, name := range category.Tags {
			tag, ok := snapshot.Get(name)
			if !ok {
				continue
			}

			groups[i].Items = append(groups[i].Items, itemOf(tag))
		}
	}

	return groups
}

// FullView lists every tag of the snapshot in snapshot order.
func FullView(snapshot *data.Snapshot) []Item {
	tags := snapshot.Tags()
	items := make([]Item, len(tags))

	for i, tag := range tags {
		items[i] = itemOf(tag)
	}

	return items
}

func itemOf(tag data.Tag) Item {
	return Item{Name: tag.Name, Text: tag.Display.Text}
}

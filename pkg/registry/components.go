/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: components.go
Description: Built-in component tables for the MJSchema generator. Mirrors the
attribute metadata declared by the upstream mjml component packages: allowed
attributes with their type annotations, in declaration order, plus default
attribute values. The annotation strings use the upstream mini-language
(enum(...), unit(...), unit(...){m,n}, color, boolean, integer, string).
*/

package registry

import (
	"github.com/kleascm/mjschema/pkg/interfaces"
)

// attr builds a single attribute declaration. Declaration order matters:
// the generated documents keep attributes in first-seen order.
func attr(name, annotation string) interfaces.AttributeDeclaration {
	return interfaces.AttributeDeclaration{Name: name, Annotation: annotation}
}

// componentDefinitions returns the full body-component table in registry
// order. Every entry records the npm package the metadata was taken from.
func componentDefinitions() []*interfaces.ComponentDefinition {
	return []*interfaces.ComponentDefinition{
		{
			Name:    "mj-body",
			Package: "mjml-body",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("css-class", "string"),
				attr("width", "unit(px)"),
			},
			Defaults: map[string]any{
				"width": "600px",
			},
		},
		{
			Name:    "mj-section",
			Package: "mjml-section",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("background-position", "string"),
				attr("background-position-x", "string"),
				attr("background-position-y", "string"),
				attr("background-repeat", "enum(repeat,repeat-x,repeat-y,no-repeat)"),
				attr("background-size", "string"),
				attr("background-url", "string"),
				attr("border", "string"),
				attr("border-bottom", "string"),
				attr("border-left", "string"),
				attr("border-radius", "string"),
				attr("border-right", "string"),
				attr("border-top", "string"),
				attr("css-class", "string"),
				attr("direction", "enum(ltr,rtl)"),
				attr("full-width", "enum(full-width,false)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("text-align", "enum(left,center,right)"),
				attr("text-padding", "unit(px,%){1,4}"),
			},
			Defaults: map[string]any{
				"background-repeat": "repeat",
				"background-size":   "auto",
				"direction":         "ltr",
				"padding":           "20px 0",
				"text-align":        "center",
				"text-padding":      "4px 4px 4px 0",
			},
		},
		{
			Name:    "mj-wrapper",
			Package: "mjml-wrapper",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("background-position", "string"),
				attr("background-position-x", "string"),
				attr("background-position-y", "string"),
				attr("background-repeat", "enum(repeat,repeat-x,repeat-y,no-repeat)"),
				attr("background-size", "string"),
				attr("background-url", "string"),
				attr("border", "string"),
				attr("border-bottom", "string"),
				attr("border-left", "string"),
				attr("border-radius", "string"),
				attr("border-right", "string"),
				attr("border-top", "string"),
				attr("css-class", "string"),
				attr("direction", "enum(ltr,rtl)"),
				attr("full-width", "enum(full-width,false)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("text-align", "enum(left,center,right)"),
			},
			Defaults: map[string]any{
				"background-repeat": "repeat",
				"background-size":   "auto",
				"direction":         "ltr",
				"padding":           "20px 0",
				"text-align":        "center",
			},
		},
		{
			Name:    "mj-group",
			Package: "mjml-group",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("css-class", "string"),
				attr("direction", "enum(ltr,rtl)"),
				attr("vertical-align", "enum(top,bottom,middle)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"direction": "ltr",
			},
		},
		{
			Name:    "mj-column",
			Package: "mjml-column",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("border", "string"),
				attr("border-bottom", "string"),
				attr("border-left", "string"),
				attr("border-radius", "unit(px,%){1,4}"),
				attr("border-right", "string"),
				attr("border-top", "string"),
				attr("css-class", "string"),
				attr("direction", "enum(ltr,rtl)"),
				attr("inner-background-color", "color"),
				attr("inner-border", "string"),
				attr("inner-border-bottom", "string"),
				attr("inner-border-left", "string"),
				attr("inner-border-radius", "unit(px,%){1,4}"),
				attr("inner-border-right", "string"),
				attr("inner-border-top", "string"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("vertical-align", "enum(top,bottom,middle)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"direction":      "ltr",
				"vertical-align": "top",
			},
		},
		{
			Name:    "mj-text",
			Package: "mjml-text",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,right,center,justify)"),
				attr("color", "color"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-style", "string"),
				attr("font-weight", "string"),
				attr("height", "unit(px,%)"),
				attr("letter-spacing", "unit(px,em)"),
				attr("line-height", "unit(px,%,)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("text-decoration", "string"),
				attr("text-transform", "string"),
				attr("vertical-align", "enum(top,bottom,middle)"),
			},
			Defaults: map[string]any{
				"align":       "left",
				"color":       "#000000",
				"font-family": "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":   "13px",
				"line-height": "1",
				"padding":     "10px 25px",
			},
		},
		{
			Name:    "mj-button",
			Package: "mjml-button",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("background-color", "color"),
				attr("border", "string"),
				attr("border-bottom", "string"),
				attr("border-left", "string"),
				attr("border-radius", "unit(px,%)"),
				attr("border-right", "string"),
				attr("border-top", "string"),
				attr("color", "color"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-style", "string"),
				attr("font-weight", "string"),
				attr("height", "unit(px,%)"),
				attr("href", "string"),
				attr("inner-padding", "unit(px,%){1,4}"),
				attr("letter-spacing", "unit(px,em)"),
				attr("line-height", "unit(px,%,)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("rel", "string"),
				attr("target", "string"),
				attr("text-align", "string"),
				attr("text-decoration", "string"),
				attr("text-transform", "string"),
				attr("title", "string"),
				attr("vertical-align", "enum(top,bottom,middle)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"align":            "center",
				"background-color": "#414141",
				"border":           "none",
				"border-radius":    "3px",
				"color":            "#ffffff",
				"font-family":      "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":        "13px",
				"font-weight":      "normal",
				"inner-padding":    "10px 25px",
				"line-height":      "120%",
				"padding":          "10px 25px",
				"target":           "_blank",
				"text-decoration":  "none",
				"text-transform":   "none",
				"vertical-align":   "middle",
			},
		},
		{
			Name:    "mj-image",
			Package: "mjml-image",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("alt", "string"),
				attr("border", "string"),
				attr("border-bottom", "string"),
				attr("border-left", "string"),
				attr("border-radius", "unit(px,%){1,4}"),
				attr("border-right", "string"),
				attr("border-top", "string"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("fluid-on-mobile", "boolean"),
				attr("height", "unit(px,auto)"),
				attr("href", "string"),
				attr("name", "string"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("rel", "string"),
				attr("sizes", "string"),
				attr("src", "string"),
				attr("srcset", "string"),
				attr("target", "string"),
				attr("title", "string"),
				attr("usemap", "string"),
				attr("width", "unit(px)"),
			},
			Defaults: map[string]any{
				"align":   "center",
				"border":  "none",
				"height":  "auto",
				"padding": "10px 25px",
				"target":  "_blank",
			},
		},
		{
			Name:    "mj-divider",
			Package: "mjml-divider",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("border-color", "color"),
				attr("border-style", "enum(dashed,dotted,solid)"),
				attr("border-width", "unit(px)"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"align":        "center",
				"border-color": "#000000",
				"border-style": "solid",
				"border-width": "4px",
				"padding":      "10px 25px",
				"width":        "100%",
			},
		},
		{
			Name:    "mj-spacer",
			Package: "mjml-spacer",
			Attributes: []interfaces.AttributeDeclaration{
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("height", "unit(px,%)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"height": "20px",
			},
		},
		{
			Name:    "mj-table",
			Package: "mjml-table",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,right,center)"),
				attr("border", "string"),
				attr("cellpadding", "integer"),
				attr("cellspacing", "integer"),
				attr("color", "color"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("line-height", "unit(px,%,)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("role", "enum(none,presentation)"),
				attr("table-layout", "enum(auto,fixed,initial,inherit)"),
				attr("vertical-align", "enum(top,bottom,middle)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"align":        "left",
				"border":       "none",
				"cellpadding":  "0",
				"cellspacing":  "0",
				"color":        "#000000",
				"font-family":  "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":    "13px",
				"line-height":  "22px",
				"padding":      "10px 25px",
				"table-layout": "auto",
				"width":        "100%",
			},
		},
		{
			Name:    "mj-social",
			Package: "mjml-social",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,right,center)"),
				attr("border-radius", "unit(px,%)"),
				attr("color", "color"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-style", "string"),
				attr("font-weight", "string"),
				attr("icon-height", "unit(px,%)"),
				attr("icon-size", "unit(px,%)"),
				attr("icon-padding", "unit(px,%){1,4}"),
				attr("inner-padding", "unit(px,%){1,4}"),
				attr("line-height", "unit(px,%,)"),
				attr("mode", "enum(horizontal,vertical)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("table-layout", "enum(auto,fixed)"),
				attr("text-padding", "unit(px,%){1,4}"),
				attr("text-decoration", "string"),
				attr("vertical-align", "enum(top,bottom,middle)"),
			},
			Defaults: map[string]any{
				"align":           "center",
				"border-radius":   "3px",
				"color":           "#333333",
				"font-family":     "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":       "13px",
				"icon-size":       "20px",
				"line-height":     "22px",
				"mode":            "horizontal",
				"padding":         "10px 25px",
				"text-decoration": "none",
			},
		},
		{
			Name:    "mj-social-element",
			Package: "mjml-social",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("alt", "string"),
				attr("background-color", "color"),
				attr("border-radius", "unit(px,%)"),
				attr("color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-style", "string"),
				attr("font-weight", "string"),
				attr("href", "string"),
				attr("icon-height", "unit(px,%)"),
				attr("icon-size", "unit(px,%)"),
				attr("icon-padding", "unit(px,%){1,4}"),
				attr("line-height", "unit(px,%,)"),
				attr("name", "string"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("rel", "string"),
				attr("sizes", "string"),
				attr("src", "string"),
				attr("srcset", "string"),
				attr("target", "string"),
				attr("text-padding", "unit(px,%){1,4}"),
				attr("text-decoration", "string"),
				attr("title", "string"),
				attr("vertical-align", "enum(top,bottom,middle)"),
			},
			Defaults: map[string]any{
				"align":           "left",
				"border-radius":   "3px",
				"color":           "#000",
				"font-family":     "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":       "13px",
				"line-height":     "1",
				"padding":         "4px",
				"target":          "_blank",
				"text-decoration": "none",
			},
		},
		{
			Name:    "mj-navbar",
			Package: "mjml-navbar",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("base-url", "string"),
				attr("css-class", "string"),
				attr("hamburger", "string"),
				attr("ico-align", "enum(left,center,right)"),
				attr("ico-close", "string"),
				attr("ico-color", "color"),
				attr("ico-font-family", "string"),
				attr("ico-font-size", "unit(px,%)"),
				attr("ico-line-height", "unit(px,%,)"),
				attr("ico-open", "string"),
				attr("ico-padding", "unit(px,%){1,4}"),
				attr("ico-padding-bottom", "unit(px,%)"),
				attr("ico-padding-left", "unit(px,%)"),
				attr("ico-padding-right", "unit(px,%)"),
				attr("ico-padding-top", "unit(px,%)"),
				attr("ico-text-decoration", "string"),
				attr("ico-text-transform", "string"),
			},
			Defaults: map[string]any{
				"align":               "center",
				"ico-align":           "center",
				"ico-open":            "&#9776;",
				"ico-close":           "&#10005;",
				"ico-color":           "#000000",
				"ico-font-size":       "30px",
				"ico-text-decoration": "none",
				"ico-text-transform":  "uppercase",
			},
		},
		{
			Name:    "mj-navbar-link",
			Package: "mjml-navbar",
			Attributes: []interfaces.AttributeDeclaration{
				attr("color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-style", "string"),
				attr("font-weight", "string"),
				attr("href", "string"),
				attr("letter-spacing", "unit(px,em)"),
				attr("line-height", "unit(px,%,)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("rel", "string"),
				attr("target", "string"),
				attr("text-decoration", "string"),
				attr("text-transform", "string"),
			},
			Defaults: map[string]any{
				"color":           "#000000",
				"font-family":     "Ubuntu, Helvetica, Arial, sans-serif",
				"font-size":       "13px",
				"font-weight":     "normal",
				"line-height":     "22px",
				"padding":         "15px 10px",
				"target":          "_blank",
				"text-decoration": "none",
				"text-transform":  "uppercase",
			},
		},
		{
			Name:    "mj-hero",
			Package: "mjml-hero",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("background-height", "unit(px,%)"),
				attr("background-position", "string"),
				attr("background-url", "string"),
				attr("background-width", "unit(px,%)"),
				attr("border-radius", "unit(px,%){1,4}"),
				attr("css-class", "string"),
				attr("height", "unit(px,%)"),
				attr("mode", "enum(fluid-height,fixed-height)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
				attr("vertical-align", "enum(top,bottom,middle)"),
				attr("width", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"background-color":    "#ffffff",
				"background-position": "center center",
				"height":              "0px",
				"mode":                "fixed-height",
				"padding":             "0px",
				"vertical-align":      "top",
			},
		},
		{
			Name:    "mj-carousel",
			Package: "mjml-carousel",
			Attributes: []interfaces.AttributeDeclaration{
				attr("align", "enum(left,center,right)"),
				attr("border-radius", "unit(px,%){1,4}"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("icon-width", "unit(px,%)"),
				attr("left-icon", "string"),
				attr("right-icon", "string"),
				attr("tb-border", "string"),
				attr("tb-border-radius", "unit(px,%)"),
				attr("tb-hover-border-color", "color"),
				attr("tb-selected-border-color", "color"),
				attr("tb-width", "unit(px,%)"),
				attr("thumbnails", "enum(visible,hidden)"),
			},
			Defaults: map[string]any{
				"align":                    "center",
				"border-radius":            "6px",
				"icon-width":               "44px",
				"left-icon":                "https://i.imgur.com/xTh3hln.png",
				"right-icon":               "https://i.imgur.com/os7o9kz.png",
				"tb-border":                "2px solid transparent",
				"tb-hover-border-color":    "#fead0d",
				"tb-selected-border-color": "#ccc",
				"thumbnails":               "visible",
			},
		},
		{
			Name:    "mj-carousel-image",
			Package: "mjml-carousel",
			Attributes: []interfaces.AttributeDeclaration{
				attr("alt", "string"),
				attr("css-class", "string"),
				attr("href", "string"),
				attr("rel", "string"),
				attr("src", "string"),
				attr("target", "string"),
				attr("thumbnails-src", "string"),
				attr("title", "string"),
			},
			Defaults: map[string]any{
				"target": "_blank",
			},
		},
		{
			Name:    "mj-accordion",
			Package: "mjml-accordion",
			Attributes: []interfaces.AttributeDeclaration{
				attr("border", "string"),
				attr("container-background-color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("icon-align", "enum(top,middle,bottom)"),
				attr("icon-height", "unit(px,%)"),
				attr("icon-position", "enum(left,right)"),
				attr("icon-unwrapped-alt", "string"),
				attr("icon-unwrapped-url", "string"),
				attr("icon-width", "unit(px,%)"),
				attr("icon-wrapped-alt", "string"),
				attr("icon-wrapped-url", "string"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"border":             "2px solid black",
				"font-family":        "Ubuntu, Helvetica, Arial, sans-serif",
				"icon-align":         "middle",
				"icon-height":        "32px",
				"icon-position":      "right",
				"icon-unwrapped-alt": "-",
				"icon-unwrapped-url": "https://i.imgur.com/bIXv1bk.png",
				"icon-width":         "32px",
				"icon-wrapped-alt":   "+",
				"icon-wrapped-url":   "https://i.imgur.com/w4uTygT.png",
				"padding":            "10px 25px",
			},
		},
		{
			Name:    "mj-accordion-element",
			Package: "mjml-accordion",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("border", "string"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("icon-align", "enum(top,middle,bottom)"),
				attr("icon-height", "unit(px)"),
				attr("icon-position", "enum(left,right)"),
				attr("icon-unwrapped-alt", "string"),
				attr("icon-unwrapped-url", "string"),
				attr("icon-width", "unit(px)"),
				attr("icon-wrapped-alt", "string"),
				attr("icon-wrapped-url", "string"),
			},
		},
		{
			Name:    "mj-accordion-title",
			Package: "mjml-accordion",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"font-size": "13px",
				"padding":   "16px",
			},
		},
		{
			Name:    "mj-accordion-text",
			Package: "mjml-accordion",
			Attributes: []interfaces.AttributeDeclaration{
				attr("background-color", "color"),
				attr("color", "color"),
				attr("css-class", "string"),
				attr("font-family", "string"),
				attr("font-size", "unit(px)"),
				attr("font-weight", "string"),
				attr("letter-spacing", "unit(px,em)"),
				attr("line-height", "unit(px,%,)"),
				attr("padding", "unit(px,%){1,4}"),
				attr("padding-bottom", "unit(px,%)"),
				attr("padding-left", "unit(px,%)"),
				attr("padding-right", "unit(px,%)"),
				attr("padding-top", "unit(px,%)"),
			},
			Defaults: map[string]any{
				"font-size":   "13px",
				"line-height": "1",
				"padding":     "16px",
			},
		},
		{
			Name:       "mj-raw",
			Package:    "mjml-raw",
			Attributes: nil,
		},
	}
}

// Package vorbis decodes Ogg Vorbis audio via github.com/jfreymuth/oggvorbis.
package vorbis

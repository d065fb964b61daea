package instrument

import (
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

const headerTemplate = `/{{ repeat 80 "*" }}
* 
* McStas, neutron ray-tracing package
*         Copyright (C) 1997-2008, All rights reserved
*         Risoe National Laboratory, Roskilde, Denmark
*         Institut Laue Langevin, Grenoble, France
* 
* This file was written by mcscript, a Go based McStas 
* instrument generator maintained at the European 
* Spallation Source Data Management and Software Center
* 
* Instrument {{ .Name }}
* 
* %Identification
* Written by: {{ .Author }}
* Date: {{ .Date | date "15:04:05 on January 02, 2006" }}
* Origin: {{ .Origin }}
* %INSTRUMENT_SITE: Generated_instruments
* 
* 
* %Parameters
* 
* %End 
{{ repeat 80 "*" }}/
`

var header = template.Must(template.New("header").Funcs(sprig.TxtFuncMap()).Parse(headerTemplate))

type headerData struct {
	Name   string
	Author string
	Origin string
	Date   time.Time
}

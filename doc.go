/*
Command varphot supports amateur photometry of variable stars: selecting
observable candidates from a catalog, converting instrument measurements
to magnitudes, fitting the flux to magnitude calibration, and smoothing
and plotting light curves.

Contents

  Program overview
  Installing
  Command line usage
  Configuration
  File formats
  Algorithm outline


Program overview

Varphot is a single command with a subcommand for each step of an
observing campaign.

  varphot candidates   select observable stars from a variable star catalog
  varphot convert      rewrite Siril .dat light curves as CSV
  varphot fit          fit the flux to magnitude calibration constant
  varphot lightcurve   flux and magnitudes from an AstroImageJ table
  varphot relmag       statistics of a relative magnitude light curve
  varphot config       print a configuration file holding the defaults
  varphot version      display version and copyright

Results are printed as tables on stdout.  Progress and rejected catalog
entries are logged on stderr.  Commands given --plot also write PNG charts
to the results directory.

Sample run:

  $ varphot candidates -o candidates.csv gcvs_eclipsing.csv
  ╭──────────────────────────────────────╮
  │ Candidates written to candidates.csv │
  ├────────────────────────────┬─────────┤
  │                            │   COUNT │
  ├────────────────────────────┼─────────┤
  │ Catalog entries            │    8361 │
  │ Selected                   │     412 │
  │ Rejected, invalid-period   │    1703 │
  │ ...                        │         │
  ╰────────────────────────────┴─────────╯


Installing

You need Go 1.26 or later.

  go install github.com/soniakeys/varphot@latest


Command line usage

  varphot [-c file] [--log-level level] [--log-format format] <command> [args]

Global options:

  -c, --config      configuration file, default ./varphot.toml if present
  --log-level       debug, info, warn, or error
  --log-format      console, json, or auto

Candidates:

  varphot candidates [-o candidates.csv] [--list] <catalog.csv>

Entries with an unknown period, entries too far south to rise at the
configured site, and entries outside the [filter] limits are dropped.
Each rejection is logged with its catalog row and a reason.  --list
prints the selected candidates with sexagesimal positions.

Convert:

  varphot convert [dir]

Each .dat file in dir, default lightcurves/auto_aperture, is written
comma delimited to the same name with .csv appended, without its header.

Fit:

  varphot fit [--plot] [pairs.csv]

Fits A in m = -2.5 log10(flux / A) to comma separated flux, magnitude
pairs.  With no file the built in reference set is used.  Put the
reported A in [photometry] calibration_a.

Light curve:

  varphot lightcurve [--model pogson|powerlaw|median] [--true-mag m]
                     [-w window] [--edges legacy|shrink] [--plot] <table>

Relative magnitudes:

  varphot relmag [--true-mag m] [--binary] [-w window]
                 [--edges legacy|shrink] [--plot] <series.csv>


Configuration

Settings are read from a TOML file.  "varphot config" prints one holding
every default, with comments.  Sections are [filter], [site],
[photometry], [smoothing], [output], and [logging].  A missing
./varphot.toml is not an error; a file named with -c must exist.


File formats

Catalog: comma separated with a header row.  Columns DE-, DEd, DEm, DEs,
RAh, RAm, RAs, Period [d], MinI, and MinII are required; other columns are
carried through to the candidate list unchanged.  A blank period counts
as unknown.  A blank MinI or MinII does not reject an entry.

Measurement table: whitespace delimited with a header line, as written by
AstroImageJ.  Columns J.D.-2400000, Source-Sky_T1, Sky/Pixel_T1,
N_Sky_Pixels_T1, and EXPTIME are required, Source-Sky_C2 is optional.

Relative magnitude light curve: two comma separated columns, Julian date
and relative magnitude, no header.  A leading byte order mark is ignored.


Algorithm outline

1.  Background counts are sky per pixel times the aperture pixel count.
Flux is source counts less background, divided by the exposure time of
the first row.

2.  With a comparison star, the target counts of each row are first
divided by the ratio of that row's comparison counts to the median
comparison counts.

3.  Flux is converted to magnitudes by one of the models.  A non-positive
flux in the Pogson or power law models is an error.

4.  Magnitudes are smoothed with a centered moving average of the
configured window.  With "legacy" edges the outputs whose window would
pass an end of the series repeat the nearest full window average.  With
"shrink" edges they average the samples that exist.

5.  The calibration fit is linear in log A, so least squares is solved
directly: log A is the mean of (m + 2.5 log10 flux) / 2.5.

-------------
Public domain.
*/
package main

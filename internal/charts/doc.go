// Package charts renders the report's chart images as PNG files:
// total sales per category as a bar chart, the shipping cost share per
// category as a pie chart and the unit price of every record, in load
// order, as a line chart.
package charts
